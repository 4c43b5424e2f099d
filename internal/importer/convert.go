package importer

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/google/uuid"
)

// ConvertResult holds the domain objects produced from one export.
type ConvertResult struct {
	Items   []*domain.ReviewItem
	Entries []*domain.PracticeLogEntry
}

// ConvertExportSchema maps a validated export onto domain objects. Fixed
// schedules are upgraded to SM-2 state the same way the database migration
// upgrades v1 rows: the default ease factor, the interval derived from the
// gap around the pending slot, and the pending slot as the next review.
func ConvertExportSchema(schema *ExportSchema, now time.Time) *ConvertResult {
	result := &ConvertResult{}

	slugs := make([]string, 0, len(schema.Problems))
	for slug := range schema.Problems {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		result.Items = append(result.Items, convertProblem(slug, schema.Problems[slug], now))
	}
	for _, e := range schema.PracticeLog {
		result.Entries = append(result.Entries, convertPractice(e))
	}

	return result
}

func convertProblem(slug string, p ProblemExport, now time.Time) *domain.ReviewItem {
	addedAt := now
	if p.AddedAt > 0 {
		addedAt = time.UnixMilli(p.AddedAt).UTC()
	}

	interval, next := upgradeFixedSchedule(p.ReviewDates, p.CurrentInterval, now)

	completed := make([]time.Time, 0, len(p.CompletedReviews))
	for _, ts := range p.CompletedReviews {
		completed = append(completed, time.UnixMilli(ts).UTC())
	}

	return &domain.ReviewItem{
		ID:               slug,
		Title:            p.Title,
		URL:              p.URL,
		Number:           p.Number,
		Difficulty:       domain.NormalizeDifficulty(p.Difficulty),
		Tags:             p.Tags,
		AddedAt:          addedAt,
		EaseFactor:       domain.DefaultEaseFactor,
		IntervalDays:     interval,
		NextReview:       next,
		CompletedReviews: completed,
		CalendarEventIDs: p.CalendarEventIDs,
		CreatedAt:        addedAt,
		UpdatedAt:        now,
	}
}

// upgradeFixedSchedule maps a fixed reminder list onto SM-2 state. The
// pending slot becomes the next review; the interval is the day gap between
// the pending slot and its predecessor (or 1 for the first slot). An
// exhausted or empty schedule falls back to one day out from now.
func upgradeFixedSchedule(reviewDates []int64, slot int, now time.Time) (int, time.Time) {
	if slot < 0 {
		slot = 0
	}
	if len(reviewDates) == 0 || slot >= len(reviewDates) {
		return 1, domain.AtReminderTime(now.AddDate(0, 0, 1))
	}

	next := time.UnixMilli(reviewDates[slot])
	interval := 1
	if slot > 0 {
		prev := time.UnixMilli(reviewDates[slot-1])
		gap := next.Sub(prev).Hours() / 24
		interval = int(math.Round(gap))
		if interval < 1 {
			interval = 1
		}
	}
	return interval, domain.AtReminderTime(next)
}

func convertPractice(e PracticeExport) *domain.PracticeLogEntry {
	title := e.Title
	if title == "" {
		title = e.Slug
	}
	return &domain.PracticeLogEntry{
		ID:       uuid.New().String(),
		Slug:     e.Slug,
		Title:    title,
		Solved:   true,
		Tags:     e.Tags,
		LoggedAt: time.UnixMilli(e.LoggedAt).UTC(),
	}
}
