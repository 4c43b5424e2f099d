package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetSeededDefaults(t *testing.T) {
	f := newFixture(t)
	svc := NewSettingsService(f.settings)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Goals.DailyNew)
	assert.Equal(t, 8, cfg.Goals.DailyReview)
	assert.Equal(t, 45, cfg.Goals.TimeBudgetMin)
	assert.Equal(t, 1, cfg.FirstIntervalDays)
	assert.False(t, cfg.AutoLogOnAdd)
}

func TestSettingsService_PartialUpdateKeepsOtherFields(t *testing.T) {
	f := newFixture(t)
	svc := NewSettingsService(f.settings)
	ctx := context.Background()

	budget := 90
	cfg, err := svc.Update(ctx, SettingsUpdate{TimeBudgetMin: &budget})
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Goals.TimeBudgetMin)
	assert.Equal(t, 3, cfg.Goals.DailyNew)
	assert.Equal(t, 8, cfg.Goals.DailyReview)

	// Updated values survive a reload.
	reloaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, reloaded.Goals.TimeBudgetMin)
	assert.Equal(t, 3, reloaded.Goals.DailyNew)
}

func TestSettingsService_UpdateClampsOutOfRange(t *testing.T) {
	f := newFixture(t)
	svc := NewSettingsService(f.settings)
	ctx := context.Background()

	firstInterval := 120
	budget := 2
	cfg, err := svc.Update(ctx, SettingsUpdate{
		FirstIntervalDays: &firstInterval,
		TimeBudgetMin:     &budget,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FirstIntervalDays)
	assert.Equal(t, 10, cfg.Goals.TimeBudgetMin)
}

func TestSettingsService_UpdateAutoLog(t *testing.T) {
	f := newFixture(t)
	svc := NewSettingsService(f.settings)
	ctx := context.Background()

	on := true
	cfg, err := svc.Update(ctx, SettingsUpdate{AutoLogOnAdd: &on})
	require.NoError(t, err)
	assert.True(t, cfg.AutoLogOnAdd)

	reloaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.AutoLogOnAdd)
}
