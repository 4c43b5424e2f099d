package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// Planning heuristics.
const (
	minutesPerReview   = 5   // time cost of one review
	minutesPerNew      = 15  // time cost of one new problem
	weekendBoostFactor = 1.5 // weekend days allow a larger review target
	topReviewCount     = 3
	topWeakTagCount    = 5
)

// PlanInput carries everything the planner needs; all of it is derived from
// the store's current snapshot by the caller.
type PlanInput struct {
	Goals              domain.Goals
	DueItems           []*domain.ReviewItem
	TodayPracticeCount int
	TodayCompleted     int
	WeakTags           []TagWeakness
	Now                time.Time
}

// DailyPlan is the planner's actionable output for one day.
type DailyPlan struct {
	Date               time.Time
	IsWeekend          bool
	BacklogMode        bool
	DueCount           int
	OverdueCount       int
	ReviewTarget       int
	RecommendedReviews int
	EstimatedMinutes   int
	BacklogDays        int
	TopReviews         []RankedItem
	WeakTags           []TagWeakness
}

// Plan turns due-item counts, goals, and calendar context into a daily
// target. It is a total function: no due items yields an empty plan, never
// an error. Overdue items are always counted, even beyond any target, and
// in backlog mode the time budget is a hard ceiling on the raised target.
func Plan(in PlanInput) DailyPlan {
	goals := in.Goals.Normalize()
	weekday := in.Now.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	baseTarget := goals.DailyReview
	if isWeekend {
		baseTarget = int(math.Ceil(float64(goals.DailyReview) * weekendBoostFactor))
	}
	maxByTime := goals.TimeBudgetMin / minutesPerReview

	overdueCount := 0
	for _, item := range in.DueItems {
		if item.Overdue(in.Now) {
			overdueCount++
		}
	}

	backlogMode := overdueCount > baseTarget*2
	reviewTarget := baseTarget
	if backlogMode {
		reviewTarget = minInt(baseTarget*2, maxByTime)
	}

	recommended := minInt(len(in.DueItems), reviewTarget)

	estimated := maxInt(0, recommended-in.TodayCompleted)*minutesPerReview +
		maxInt(0, goals.DailyNew-in.TodayPracticeCount)*minutesPerNew

	// Days to clear the backlog at the base (non-boosted) pace.
	backlogDays := 0
	if overdueCount > 0 {
		pace := maxInt(1, baseTarget)
		backlogDays = int(math.Ceil(float64(overdueCount) / float64(pace)))
	}

	ranked := Rank(in.DueItems, in.Now)
	if len(ranked) > topReviewCount {
		ranked = ranked[:topReviewCount]
	}

	weak := in.WeakTags
	if len(weak) > topWeakTagCount {
		weak = weak[:topWeakTagCount]
	}

	return DailyPlan{
		Date:               domain.StartOfDay(in.Now),
		IsWeekend:          isWeekend,
		BacklogMode:        backlogMode,
		DueCount:           len(in.DueItems),
		OverdueCount:       overdueCount,
		ReviewTarget:       reviewTarget,
		RecommendedReviews: recommended,
		EstimatedMinutes:   estimated,
		BacklogDays:        backlogDays,
		TopReviews:         ranked,
		WeakTags:           weak,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
