package repository

import "errors"

// Sentinel errors surfaced to services. Check with errors.Is.
var (
	// ErrNotFound is returned when a lookup by slug or id matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyTracked is returned when adding a slug already present in
	// the review plan.
	ErrAlreadyTracked = errors.New("already tracked")

	// ErrDuplicateLog is returned when a practice log entry for the same
	// slug already exists on the same calendar day.
	ErrDuplicateLog = errors.New("already logged today")
)
