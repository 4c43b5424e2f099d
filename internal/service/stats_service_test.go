package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStats(t *testing.T) {
	f := newFixture(t)
	svc := NewStatsService(f.items, f.practice)
	ctx := context.Background()
	now := time.Now()

	item := testutil.NewTestItem("two-sum", testutil.WithNextReview(now.Add(-time.Hour)))
	require.NoError(t, f.items.Create(ctx, item))
	for i, rating := range []domain.Rating{domain.RatingGood, domain.RatingForgot, domain.RatingGood, domain.RatingEasy} {
		require.NoError(t, f.items.AppendReview(ctx, item.ID, domain.ReviewRecord{
			Date:         now.AddDate(0, 0, -3+i),
			Rating:       rating,
			IntervalDays: 1,
			EaseFactor:   2.5,
		}))
	}

	resp, err := svc.GetStats(ctx, contract.StatsRequest{Now: &now})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalItems)
	assert.Equal(t, 1, resp.DueCount)
	assert.Equal(t, 4, resp.Streak.TotalReviews)
	// 3 of 4 ratings were Good or better.
	assert.Equal(t, 75, resp.Streak.SuccessRate)
	// One review per day for 4 consecutive days ending today.
	assert.Equal(t, 4, resp.Streak.CurrentStreak)
	assert.Equal(t, 4, resp.Streak.LongestStreak)
}

func TestStatsService_PracticeCountsTowardStreak(t *testing.T) {
	f := newFixture(t)
	svc := NewStatsService(f.items, f.practice)
	ctx := context.Background()
	now := time.Now()

	practice := NewPracticeService(f.practice, f.items)
	for offset := 0; offset >= -2; offset-- {
		day := now.AddDate(0, 0, offset)
		resp, err := practice.Log(ctx, contract.LogRequest{Slug: "daily", Solved: true, Now: &day})
		require.NoError(t, err)
		require.True(t, resp.Success)
	}

	resp, err := svc.GetStats(ctx, contract.StatsRequest{Now: &now})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Streak.CurrentStreak)
	assert.Equal(t, 0, resp.Streak.TotalReviews)
}

func TestStatsService_EmptyStore(t *testing.T) {
	f := newFixture(t)
	svc := NewStatsService(f.items, f.practice)

	resp, err := svc.GetStats(context.Background(), contract.StatsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalItems)
	assert.Equal(t, 0, resp.Streak.CurrentStreak)
	assert.Empty(t, resp.WeakTags)
}
