package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/stretchr/testify/assert"
)

// 2025-06-11 is a Wednesday, 2025-06-14 a Saturday.
var (
	weekdayNow = time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)
	weekendNow = time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
)

func dueItems(now time.Time, overdue, dueToday int) []*domain.ReviewItem {
	var items []*domain.ReviewItem
	for i := 0; i < overdue; i++ {
		items = append(items, &domain.ReviewItem{
			EaseFactor: 2.5,
			NextReview: domain.AtReminderTime(now.AddDate(0, 0, -1-i%3)),
		})
	}
	for i := 0; i < dueToday; i++ {
		items = append(items, &domain.ReviewItem{
			EaseFactor: 2.5,
			NextReview: domain.AtReminderTime(now),
		})
	}
	return items
}

func TestPlan_WeekdayBaseTarget(t *testing.T) {
	plan := Plan(PlanInput{
		Goals:    domain.Goals{DailyNew: 3, DailyReview: 8, TimeBudgetMin: 45},
		DueItems: dueItems(weekdayNow, 0, 5),
		Now:      weekdayNow,
	})

	assert.False(t, plan.IsWeekend)
	assert.False(t, plan.BacklogMode)
	assert.Equal(t, 8, plan.ReviewTarget)
	assert.Equal(t, 5, plan.RecommendedReviews)
}

func TestPlan_WeekendBoost(t *testing.T) {
	plan := Plan(PlanInput{
		Goals:    domain.Goals{DailyNew: 3, DailyReview: 8, TimeBudgetMin: 120},
		DueItems: dueItems(weekendNow, 0, 20),
		Now:      weekendNow,
	})

	assert.True(t, plan.IsWeekend)
	assert.Equal(t, 12, plan.ReviewTarget) // ceil(8 * 1.5)
	assert.Equal(t, 12, plan.RecommendedReviews)
}

func TestPlan_BacklogNotTriggeredAtBoundary(t *testing.T) {
	// overdue=9 is not > 8*2, so normal target applies.
	plan := Plan(PlanInput{
		Goals:    domain.Goals{DailyNew: 3, DailyReview: 8, TimeBudgetMin: 45},
		DueItems: dueItems(weekdayNow, 9, 11),
		Now:      weekdayNow,
	})

	assert.False(t, plan.BacklogMode)
	assert.Equal(t, 9, plan.OverdueCount)
	assert.Equal(t, 8, plan.ReviewTarget)
}

func TestPlan_BacklogModeRaisesTargetUpToTimeBudget(t *testing.T) {
	// overdue=20 > 16 triggers backlog mode; budget 45 caps at floor(45/5)=9.
	plan := Plan(PlanInput{
		Goals:    domain.Goals{DailyNew: 3, DailyReview: 8, TimeBudgetMin: 45},
		DueItems: dueItems(weekdayNow, 20, 0),
		Now:      weekdayNow,
	})

	assert.True(t, plan.BacklogMode)
	assert.Equal(t, 9, plan.ReviewTarget) // min(16, 9)
	assert.Equal(t, 9, plan.RecommendedReviews)
}

func TestPlan_BacklogModeWithAmpleBudget(t *testing.T) {
	plan := Plan(PlanInput{
		Goals:    domain.Goals{DailyNew: 3, DailyReview: 8, TimeBudgetMin: 120},
		DueItems: dueItems(weekdayNow, 20, 0),
		Now:      weekdayNow,
	})

	assert.True(t, plan.BacklogMode)
	assert.Equal(t, 16, plan.ReviewTarget) // min(16, 24)
}

func TestPlan_BacklogDaysAtBasePace(t *testing.T) {
	plan := Plan(PlanInput{
		Goals:    domain.Goals{DailyNew: 0, DailyReview: 8, TimeBudgetMin: 120},
		DueItems: dueItems(weekdayNow, 20, 0),
		Now:      weekdayNow,
	})

	assert.Equal(t, 3, plan.BacklogDays) // ceil(20/8)
}

func TestPlan_EstimatedMinutes(t *testing.T) {
	plan := Plan(PlanInput{
		Goals:              domain.Goals{DailyNew: 3, DailyReview: 8, TimeBudgetMin: 60},
		DueItems:           dueItems(weekdayNow, 0, 6),
		TodayPracticeCount: 1,
		TodayCompleted:     2,
		Now:                weekdayNow,
	})

	// (6-2)*5 + (3-1)*15 = 50
	assert.Equal(t, 50, plan.EstimatedMinutes)
}

func TestPlan_EstimateNeverNegative(t *testing.T) {
	plan := Plan(PlanInput{
		Goals:              domain.Goals{DailyNew: 1, DailyReview: 2, TimeBudgetMin: 30},
		DueItems:           dueItems(weekdayNow, 0, 1),
		TodayPracticeCount: 10,
		TodayCompleted:     10,
		Now:                weekdayNow,
	})

	assert.Equal(t, 0, plan.EstimatedMinutes)
}

func TestPlan_EmptyDueItemsYieldsEmptyPlan(t *testing.T) {
	plan := Plan(PlanInput{
		Goals: domain.DefaultGoals(),
		Now:   weekdayNow,
	})

	assert.Equal(t, 0, plan.DueCount)
	assert.Equal(t, 0, plan.RecommendedReviews)
	assert.Equal(t, 0, plan.BacklogDays)
	assert.Empty(t, plan.TopReviews)
}

func TestPlan_TopReviewsLimitedToThree(t *testing.T) {
	plan := Plan(PlanInput{
		Goals:    domain.DefaultGoals(),
		DueItems: dueItems(weekdayNow, 4, 4),
		Now:      weekdayNow,
	})

	assert.Len(t, plan.TopReviews, 3)
	// Most overdue items rank first.
	assert.GreaterOrEqual(t,
		plan.TopReviews[0].PriorityScore, plan.TopReviews[2].PriorityScore)
}

func TestPlan_WeakTagsLimitedToFive(t *testing.T) {
	weak := make([]TagWeakness, 8)
	for i := range weak {
		weak[i] = TagWeakness{Tag: string(rune('a' + i))}
	}
	plan := Plan(PlanInput{Goals: domain.DefaultGoals(), WeakTags: weak, Now: weekdayNow})
	assert.Len(t, plan.WeakTags, 5)
}

func TestPlan_BacklogTargetBounds(t *testing.T) {
	// Property from the capacity-planning contract: in backlog mode the target
	// never exceeds the time budget ceiling.
	for _, budget := range []int{10, 45, 80, 200} {
		plan := Plan(PlanInput{
			Goals:    domain.Goals{DailyReview: 8, TimeBudgetMin: budget},
			DueItems: dueItems(weekdayNow, 30, 0),
			Now:      weekdayNow,
		})
		assert.True(t, plan.BacklogMode)
		assert.LessOrEqual(t, plan.ReviewTarget, budget/5, "budget %d", budget)
	}
}
