package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// ReviewItemRepo persists tracked problems and their scheduling state.
// Reads return the full record (history, completed reviews, tags, calendar
// events included); writes replace the full scheduling state of the row.
type ReviewItemRepo interface {
	Create(ctx context.Context, item *domain.ReviewItem) error
	GetBySlug(ctx context.Context, slug string) (*domain.ReviewItem, error)
	List(ctx context.Context) ([]*domain.ReviewItem, error)
	// ListDue returns items whose next review falls strictly before the
	// given cutoff (start-of-tomorrow for "due today or overdue").
	ListDue(ctx context.Context, before time.Time) ([]*domain.ReviewItem, error)
	Update(ctx context.Context, item *domain.ReviewItem) error
	// AppendReview records one completed rating event: a history snapshot
	// plus the parallel completed-review timestamp.
	AppendReview(ctx context.Context, slug string, rec domain.ReviewRecord) error
	// AddCompletedReviews backfills bare completion timestamps with no
	// history snapshot, as produced by fixed-schedule exports.
	AddCompletedReviews(ctx context.Context, slug string, times []time.Time) error
	SetTags(ctx context.Context, slug string, tags []string) error
	AddCalendarEvents(ctx context.Context, slug string, eventIDs []string) error
	Delete(ctx context.Context, slug string) error
}

// PracticeLogRepo persists non-scheduled practice records.
type PracticeLogRepo interface {
	Create(ctx context.Context, entry *domain.PracticeLogEntry) error
	// ExistsOn reports whether the slug already has an entry on the calendar
	// day containing t.
	ExistsOn(ctx context.Context, slug string, t time.Time) (bool, error)
	ListOn(ctx context.Context, t time.Time) ([]*domain.PracticeLogEntry, error)
	List(ctx context.Context) ([]*domain.PracticeLogEntry, error)
}

// SettingsRepo persists the single settings row (goals plus scheduler knobs).
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
