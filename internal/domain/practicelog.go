package domain

import "time"

// PracticeLogEntry records a non-scheduled practice attempt. Unlike a
// ReviewItem it carries no scheduling state; at most one entry per slug
// per calendar day is allowed.
type PracticeLogEntry struct {
	ID          string // uuid
	Slug        string
	Title       string
	Solved      bool
	DurationMin *int
	Notes       string
	Tags        []string
	LoggedAt    time.Time
}
