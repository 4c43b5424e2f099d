package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dueQueue(t *testing.T, app *App) []contract.RankedItem {
	t.Helper()
	resp, err := app.Plans.Due(context.Background(), contract.DueRequest{})
	require.NoError(t, err)
	return resp.Queue
}

func TestReviewModel_RateThroughQueue(t *testing.T) {
	app, items := testApp(t)
	first := seedDueItem(t, items, "Coin Change")
	second := seedDueItem(t, items, "Word Break")

	d := teatest.New(t, newReviewModel(app, dueQueue(t, app)))
	assert.Contains(t, d.View(), "Review 1 of 2")

	d.Press('g')
	assert.Contains(t, d.View(), "Review 2 of 2")

	d.Press('e')
	assert.True(t, d.Quitting)

	m, ok := d.Model.(reviewModel)
	require.True(t, ok)
	summary := m.summary()
	assert.Contains(t, summary, "Session complete")

	// Both ratings landed in the store.
	for _, slug := range []string{first.ID, second.ID} {
		got, err := items.GetBySlug(context.Background(), slug)
		require.NoError(t, err)
		assert.Len(t, got.History, 1)
	}
}

func TestReviewModel_SkipLeavesItemUntouched(t *testing.T) {
	app, items := testApp(t)
	item := seedDueItem(t, items, "Edit Distance")

	d := teatest.New(t, newReviewModel(app, dueQueue(t, app)))
	d.Press('s')
	assert.True(t, d.Quitting)

	got, err := items.GetBySlug(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Empty(t, got.History)

	m, ok := d.Model.(reviewModel)
	require.True(t, ok)
	assert.Contains(t, m.summary(), "skipped 1")
}

func TestReviewModel_QuitMidSession(t *testing.T) {
	app, items := testApp(t)
	seedDueItem(t, items, "Coin Change")
	seedDueItem(t, items, "Word Break")

	d := teatest.New(t, newReviewModel(app, dueQueue(t, app)))
	d.Press('g')
	d.PressEsc()
	assert.True(t, d.Quitting)

	m, ok := d.Model.(reviewModel)
	require.True(t, ok)
	assert.Contains(t, m.summary(), "1 still due")
}
