package service

import (
	"sort"
	"time"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
)

// resolveNow returns the pinned request time, or the wall clock.
func resolveNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now()
}

// dueCutoff is the exclusive upper bound for "due today or earlier".
func dueCutoff(now time.Time) time.Time {
	return domain.StartOfDay(now).AddDate(0, 0, 1)
}

// countCompletedOn counts review events that landed on now's calendar day
// across all items.
func countCompletedOn(items []*domain.ReviewItem, now time.Time) int {
	day := domain.StartOfDay(now)
	next := day.AddDate(0, 0, 1)
	count := 0
	for _, item := range items {
		for _, ts := range item.CompletedReviews {
			if !ts.Before(day) && ts.Before(next) {
				count++
			}
		}
	}
	return count
}

// collectActivity merges review completions and practice timestamps into one
// activity stream for streak computation.
func collectActivity(items []*domain.ReviewItem, entries []*domain.PracticeLogEntry) []time.Time {
	var activity []time.Time
	for _, item := range items {
		activity = append(activity, item.CompletedReviews...)
	}
	for _, e := range entries {
		activity = append(activity, e.LoggedAt)
	}
	return activity
}

// collectRatings flattens every item's rating history.
func collectRatings(items []*domain.ReviewItem) []domain.Rating {
	var ratings []domain.Rating
	for _, item := range items {
		for _, rec := range item.History {
			ratings = append(ratings, rec.Rating)
		}
	}
	return ratings
}

// countTags tallies tag occurrences and returns them sorted by count
// descending, ties alphabetical.
func countTags(tagLists ...[]string) []contract.TagCount {
	counts := make(map[string]int)
	for _, tags := range tagLists {
		for _, tag := range tags {
			counts[tag]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	out := make([]contract.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, contract.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
