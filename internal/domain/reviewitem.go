package domain

import "time"

// Ease factor bounds and defaults for the SM-2 variant.
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 3.0
	DefaultEaseFactor = 2.5

	// ReminderHour is the local hour every scheduled review is pinned to.
	ReminderHour = 20
)

// ReviewItem is one tracked problem with its scheduling state.
type ReviewItem struct {
	ID         string // stable slug, unique key in the store
	Title      string
	URL        string
	Number     int
	Difficulty Difficulty
	Tags       []string

	AddedAt      time.Time
	EaseFactor   float64
	IntervalDays int
	NextReview   time.Time

	// History and CompletedReviews grow in lockstep: one entry each per
	// completed rating event. CompletedReviews is the fast count/existence
	// index over the same events.
	History          []ReviewRecord
	CompletedReviews []time.Time

	CalendarEventIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewRecord is a snapshot of the scheduling state produced by one rating.
type ReviewRecord struct {
	Date         time.Time
	Rating       Rating
	IntervalDays int
	EaseFactor   float64
}

// NewReviewItem builds a review item with all scheduling fields populated,
// so nothing downstream has to default a missing ease factor or interval.
// firstIntervalDays values outside [1, 30] are clamped.
func NewReviewItem(id, title, url string, number int, difficulty Difficulty, tags []string, firstIntervalDays int, now time.Time) *ReviewItem {
	if firstIntervalDays < 1 {
		firstIntervalDays = 1
	}
	if firstIntervalDays > 30 {
		firstIntervalDays = 30
	}
	if difficulty == "" {
		difficulty = DifficultyUnknown
	}
	return &ReviewItem{
		ID:           id,
		Title:        title,
		URL:          url,
		Number:       number,
		Difficulty:   difficulty,
		Tags:         tags,
		AddedAt:      now,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: firstIntervalDays,
		NextReview:   AtReminderTime(now.AddDate(0, 0, firstIntervalDays)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AtReminderTime pins t to the fixed reminder time (20:00 local) of its day.
func AtReminderTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), ReminderHour, 0, 0, 0, t.Location())
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DueBy reports whether the item is due at or before the end of now's day,
// i.e. its next review falls strictly before the start of tomorrow.
func (i *ReviewItem) DueBy(now time.Time) bool {
	return i.NextReview.Before(StartOfDay(now).AddDate(0, 0, 1))
}

// Overdue reports whether the item's next review fell strictly before the
// start of now's day (in arrears, not merely due today).
func (i *ReviewItem) Overdue(now time.Time) bool {
	return i.NextReview.Before(StartOfDay(now))
}

// LastRecord returns the most recent history entry, or nil if never reviewed.
func (i *ReviewItem) LastRecord() *ReviewRecord {
	if len(i.History) == 0 {
		return nil
	}
	return &i.History[len(i.History)-1]
}

// ReviewedOn reports whether a completed review falls on the same local
// calendar day as t.
func (i *ReviewItem) ReviewedOn(t time.Time) bool {
	day := StartOfDay(t)
	next := day.AddDate(0, 0, 1)
	for _, ts := range i.CompletedReviews {
		if !ts.Before(day) && ts.Before(next) {
			return true
		}
	}
	return false
}
