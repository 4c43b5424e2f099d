package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/mnemo/internal/calendar"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportService_Export(t *testing.T) {
	f := newFixture(t)
	svc := NewExportService(f.items, calendar.NewICSExporter())
	ctx := context.Background()

	item := testutil.NewTestItem("two-sum",
		testutil.WithInterval(7),
		testutil.WithNextReview(time.Now().AddDate(0, 0, 7)))
	require.NoError(t, f.items.Create(ctx, item))

	path := filepath.Join(t.TempDir(), "two-sum.ics")
	resp, err := svc.Export(ctx, contract.ExportRequest{Slug: item.ID, Path: path, Occurrences: 3})
	require.NoError(t, err)

	assert.Equal(t, path, resp.Path)
	assert.Len(t, resp.EventIDs, 3)
	assert.Equal(t, 0, resp.Skipped)

	_, err = os.Stat(path)
	require.NoError(t, err)

	// Event ids land back on the item.
	got, err := f.items.GetBySlug(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, got.CalendarEventIDs, 3)
}

func TestExportService_UnknownSlug(t *testing.T) {
	f := newFixture(t)
	svc := NewExportService(f.items, calendar.NewICSExporter())

	_, err := svc.Export(context.Background(), contract.ExportRequest{Slug: "nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
