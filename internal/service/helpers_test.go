package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/mnemo/internal/db"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/tags"
	"github.com/alexanderramin/mnemo/internal/testutil"
)

// fixture wires real repositories over an in-memory database.
type fixture struct {
	db       *sql.DB
	items    repository.ReviewItemRepo
	practice repository.PracticeLogRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:       database,
		items:    repository.NewSQLiteReviewItemRepo(database),
		practice: repository.NewSQLitePracticeLogRepo(database),
		settings: repository.NewSQLiteSettingsRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

func (f *fixture) reviewService(fetcher tags.Fetcher, notifier notifierFunc) ReviewService {
	var n notifierFunc = func(string, string) error { return nil }
	if notifier != nil {
		n = notifier
	}
	return NewReviewService(f.items, f.practice, f.settings, f.uow, fetcher, n)
}

// notifierFunc adapts a func to notify.Notifier.
type notifierFunc func(title, body string) error

func (fn notifierFunc) Notify(title, body string) error { return fn(title, body) }

// fakeFetcher returns canned metadata, or an error when meta is nil.
type fakeFetcher struct {
	meta  *tags.Metadata
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, slug string) (*tags.Metadata, error) {
	f.calls++
	if f.meta == nil {
		return nil, fmt.Errorf("no metadata for %s", slug)
	}
	return f.meta, nil
}
