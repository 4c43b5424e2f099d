package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/google/uuid"
)

var testSlugCounter atomic.Int64

// ReviewItem options
type ItemOption func(*domain.ReviewItem)

func WithEase(ef float64) ItemOption {
	return func(i *domain.ReviewItem) {
		i.EaseFactor = ef
	}
}

func WithInterval(days int) ItemOption {
	return func(i *domain.ReviewItem) {
		i.IntervalDays = days
	}
}

func WithNextReview(t time.Time) ItemOption {
	return func(i *domain.ReviewItem) {
		i.NextReview = t
	}
}

func WithDifficulty(d domain.Difficulty) ItemOption {
	return func(i *domain.ReviewItem) {
		i.Difficulty = d
	}
}

func WithTags(tags ...string) ItemOption {
	return func(i *domain.ReviewItem) {
		i.Tags = tags
	}
}

// NewTestItem builds a review item with fresh defaults and a unique slug
// derived from the name.
func NewTestItem(name string, opts ...ItemOption) *domain.ReviewItem {
	now := time.Now().UTC()
	slug := fmt.Sprintf("%s-%d", name, testSlugCounter.Add(1))
	item := domain.NewReviewItem(slug, name, "https://leetcode.com/problems/"+slug+"/", 0,
		domain.DifficultyMedium, nil, 1, now)
	for _, opt := range opts {
		opt(item)
	}
	return item
}

// PracticeLogEntry options
type LogOption func(*domain.PracticeLogEntry)

func WithLoggedAt(t time.Time) LogOption {
	return func(e *domain.PracticeLogEntry) {
		e.LoggedAt = t
	}
}

func WithLogTags(tags ...string) LogOption {
	return func(e *domain.PracticeLogEntry) {
		e.Tags = tags
	}
}

func WithUnsolved() LogOption {
	return func(e *domain.PracticeLogEntry) {
		e.Solved = false
	}
}

// NewTestLogEntry builds a solved practice log entry for the given slug.
func NewTestLogEntry(slug string, opts ...LogOption) *domain.PracticeLogEntry {
	entry := &domain.PracticeLogEntry{
		ID:       uuid.New().String(),
		Slug:     slug,
		Title:    slug,
		Solved:   true,
		LoggedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(entry)
	}
	return entry
}
