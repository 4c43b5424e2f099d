package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// StreakStats summarizes consecutive-activity streaks and review outcomes.
type StreakStats struct {
	CurrentStreak   int
	LongestStreak   int
	TotalActiveDays int
	SuccessRate     int // percent of ratings that were Good or better
	TotalReviews    int
}

// ComputeStreak derives streak statistics from activity timestamps (any
// practice or review event) and the full rating history. A streak is not
// broken until a full day with zero activity has elapsed past yesterday:
// with nothing logged today the walk starts at yesterday instead, so the
// current streak survives until tomorrow.
func ComputeStreak(activity []time.Time, ratings []domain.Rating, now time.Time) StreakStats {
	days := make(map[time.Time]bool, len(activity))
	for _, ts := range activity {
		days[domain.StartOfDay(ts)] = true
	}

	today := domain.StartOfDay(now)
	cursor := today
	if !days[cursor] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	current := 0
	for days[cursor] {
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	stats := StreakStats{
		CurrentStreak:   current,
		LongestStreak:   longestRun(days),
		TotalActiveDays: len(days),
		TotalReviews:    len(ratings),
	}

	if len(ratings) > 0 {
		good := 0
		for _, r := range ratings {
			if !r.Failed() {
				good++
			}
		}
		stats.SuccessRate = int(math.Round(float64(good) / float64(len(ratings)) * 100))
	}
	return stats
}

// longestRun finds the longest run of calendar-consecutive days. A gap of
// exactly one day continues a run; any other gap resets the run to 1.
func longestRun(days map[time.Time]bool) int {
	if len(days) == 0 {
		return 0
	}
	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].AddDate(0, 0, 1).Equal(sorted[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
