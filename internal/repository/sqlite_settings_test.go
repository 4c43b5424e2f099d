package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_GetSeededDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)

	s, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "default", s.ID)
	assert.Equal(t, 3, s.Goals.DailyNew)
	assert.Equal(t, 8, s.Goals.DailyReview)
	assert.Equal(t, 45, s.Goals.TimeBudgetMin)
	assert.Equal(t, 1, s.FirstIntervalDays)
	assert.False(t, s.AutoLogOnAdd)
}

func TestSettingsRepo_UpsertRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	s := &domain.Settings{
		Goals:             domain.Goals{DailyNew: 5, DailyReview: 12, TimeBudgetMin: 90},
		FirstIntervalDays: 2,
		AutoLogOnAdd:      true,
	}
	require.NoError(t, repo.Upsert(ctx, s))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Goals.DailyNew)
	assert.Equal(t, 12, got.Goals.DailyReview)
	assert.Equal(t, 90, got.Goals.TimeBudgetMin)
	assert.Equal(t, 2, got.FirstIntervalDays)
	assert.True(t, got.AutoLogOnAdd)
}

func TestSettingsRepo_UpsertNormalizesOutOfRangeValues(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	s := &domain.Settings{
		Goals: domain.Goals{DailyNew: -1, DailyReview: -4, TimeBudgetMin: 2},
	}
	require.NoError(t, repo.Upsert(ctx, s))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Goals.DailyNew, 0)
	assert.GreaterOrEqual(t, got.Goals.DailyReview, 0)
	assert.GreaterOrEqual(t, got.Goals.TimeBudgetMin, 10)
	assert.GreaterOrEqual(t, got.FirstIntervalDays, 1)
}
