package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeService_Log(t *testing.T) {
	f := newFixture(t)
	svc := NewPracticeService(f.practice, f.items)

	duration := 30
	resp, err := svc.Log(context.Background(), contract.LogRequest{
		Slug:        "two-sum",
		Title:       "Two Sum",
		Solved:      true,
		DurationMin: &duration,
		Tags:        []string{"array"},
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Entry)
	assert.NotEmpty(t, resp.Entry.ID)
	assert.Equal(t, "two-sum", resp.Entry.Slug)
}

func TestPracticeService_LogRejectsEmptySlug(t *testing.T) {
	f := newFixture(t)
	svc := NewPracticeService(f.practice, f.items)
	ctx := context.Background()

	for _, slug := range []string{"", "   "} {
		_, err := svc.Log(ctx, contract.LogRequest{Slug: slug, Solved: true})
		require.Error(t, err)

		var logErr *contract.LogError
		require.ErrorAs(t, err, &logErr)
		assert.Equal(t, contract.ErrInvalidLogSlug, logErr.Code)
	}

	entries, err := f.practice.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPracticeService_LogSameDayDuplicateRejected(t *testing.T) {
	f := newFixture(t)
	svc := NewPracticeService(f.practice, f.items)
	ctx := context.Background()

	first, err := svc.Log(ctx, contract.LogRequest{Slug: "two-sum", Solved: true})
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := svc.Log(ctx, contract.LogRequest{Slug: "two-sum", Solved: false})
	require.NoError(t, err)

	assert.False(t, second.Success)
	assert.Equal(t, contract.ErrDuplicateLog, second.ErrorCode)
	assert.Nil(t, second.Entry)
}

func TestPracticeService_LogDifferentDaysAllowed(t *testing.T) {
	f := newFixture(t)
	svc := NewPracticeService(f.practice, f.items)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1)
	resp, err := svc.Log(ctx, contract.LogRequest{Slug: "two-sum", Solved: true, Now: &yesterday})
	require.NoError(t, err)
	require.True(t, resp.Success)

	resp, err = svc.Log(ctx, contract.LogRequest{Slug: "two-sum", Solved: true})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestPracticeService_TagStats(t *testing.T) {
	f := newFixture(t)
	svc := NewPracticeService(f.practice, f.items)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, f.items.Create(ctx, testutil.NewTestItem("graph-item", testutil.WithTags("graph", "bfs"))))

	yesterday := now.AddDate(0, 0, -1)
	old, err := svc.Log(ctx, contract.LogRequest{Slug: "old-one", Solved: true, Tags: []string{"dp"}, Now: &yesterday})
	require.NoError(t, err)
	require.True(t, old.Success)

	today, err := svc.Log(ctx, contract.LogRequest{Slug: "fresh", Solved: true, Tags: []string{"graph", "dp"}, Now: &now})
	require.NoError(t, err)
	require.True(t, today.Success)

	stats, err := svc.TagStats(ctx, contract.TagsRequest{Now: &now})
	require.NoError(t, err)

	// Today covers only the fresh entry.
	require.Len(t, stats.Today, 2)
	assert.Equal(t, contract.TagCount{Tag: "dp", Count: 1}, stats.Today[0])
	assert.Equal(t, contract.TagCount{Tag: "graph", Count: 1}, stats.Today[1])

	// All spans practice entries and tracked items.
	assert.Equal(t, contract.TagCount{Tag: "dp", Count: 2}, stats.All[0])
	assert.Equal(t, contract.TagCount{Tag: "graph", Count: 2}, stats.All[1])
	assert.Contains(t, stats.All, contract.TagCount{Tag: "bfs", Count: 1})
}

func TestPracticeService_ListToday(t *testing.T) {
	f := newFixture(t)
	svc := NewPracticeService(f.practice, f.items)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1)
	_, err := svc.Log(ctx, contract.LogRequest{Slug: "stale", Solved: true, Now: &yesterday})
	require.NoError(t, err)
	_, err = svc.Log(ctx, contract.LogRequest{Slug: "fresh", Solved: true})
	require.NoError(t, err)

	entries, err := svc.ListToday(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh", entries[0].Slug)
}
