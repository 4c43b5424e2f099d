package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_FreshDatabase(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// All tables exist.
	for _, table := range []string{
		"review_items", "review_records", "completed_reviews",
		"review_item_tags", "calendar_events", "practice_log",
		"practice_log_tags", "settings",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}

	// Settings row is seeded with defaults.
	var dailyNew, dailyReview, budget, firstInterval int
	err = database.QueryRow(
		`SELECT daily_new, daily_review, time_budget_min, first_interval_days
		 FROM settings WHERE id = 'default'`).
		Scan(&dailyNew, &dailyReview, &budget, &firstInterval)
	require.NoError(t, err)
	assert.Equal(t, 3, dailyNew)
	assert.Equal(t, 8, dailyReview)
	assert.Equal(t, 45, budget)
	assert.Equal(t, 1, firstInterval)
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Running all migrations again must be a no-op.
	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestMigrate_UpgradesLegacyFixedSchedule(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Simulate a v1 row: fixed schedule at day offsets 1, 3, 7; the first
	// review was completed, so slot 1 (the 3-day date) is pending.
	base := time.Now()
	d1 := base.AddDate(0, 0, 1).UnixMilli()
	d3 := base.AddDate(0, 0, 3).UnixMilli()
	d7 := base.AddDate(0, 0, 7).UnixMilli()
	dates := fmt.Sprintf("%d,%d,%d", d1, d3, d7)

	_, err = database.Exec(
		`INSERT INTO review_items (slug, title, added_at, review_dates, current_slot, created_at, updated_at, next_review)
		 VALUES ('legacy-item', 'Legacy', ?, ?, 1, ?, ?, '')`,
		base.UTC().Format(time.RFC3339), dates,
		base.UTC().Format(time.RFC3339), base.UTC().Format(time.RFC3339))
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var ef float64
	var interval int
	var nextStr string
	err = database.QueryRow(
		`SELECT ease_factor, interval_days, next_review FROM review_items WHERE slug = 'legacy-item'`).
		Scan(&ef, &interval, &nextStr)
	require.NoError(t, err)

	assert.Equal(t, 2.5, ef)
	assert.Equal(t, 2, interval) // gap between day-1 and day-3 slots

	next, err := time.Parse(time.RFC3339, nextStr)
	require.NoError(t, err)
	assert.Equal(t, 20, next.Hour())

	// Second run leaves the upgraded row alone.
	require.NoError(t, Migrate(database))
	var nextStr2 string
	err = database.QueryRow(
		`SELECT next_review FROM review_items WHERE slug = 'legacy-item'`).Scan(&nextStr2)
	require.NoError(t, err)
	assert.Equal(t, nextStr, nextStr2)
}

func TestMigrate_ExhaustedLegacyScheduleFallsBack(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	base := time.Now()
	d1 := base.AddDate(0, 0, -10).UnixMilli()

	// current_slot points past the end of the schedule.
	_, err = database.Exec(
		`INSERT INTO review_items (slug, title, added_at, review_dates, current_slot, created_at, updated_at, next_review)
		 VALUES ('done-item', 'Done', ?, ?, 5, ?, ?, '')`,
		base.UTC().Format(time.RFC3339), fmt.Sprintf("%d", d1),
		base.UTC().Format(time.RFC3339), base.UTC().Format(time.RFC3339))
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var interval int
	var nextStr string
	err = database.QueryRow(
		`SELECT interval_days, next_review FROM review_items WHERE slug = 'done-item'`).
		Scan(&interval, &nextStr)
	require.NoError(t, err)

	assert.Equal(t, 1, interval)
	next, err := time.Parse(time.RFC3339, nextStr)
	require.NoError(t, err)
	assert.True(t, next.After(time.Now()), "fallback schedule should be in the future")
}

func TestDeriveLegacySchedule(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	d := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	t.Run("first slot pending", func(t *testing.T) {
		csv := fmt.Sprintf("%d,%d", d(1).UnixMilli(), d(3).UnixMilli())
		interval, next := deriveLegacySchedule(csv, 0, now)
		assert.Equal(t, 1, interval)
		assert.Equal(t, d(1).Day(), next.Day())
	})

	t.Run("empty schedule", func(t *testing.T) {
		interval, next := deriveLegacySchedule("", 0, now)
		assert.Equal(t, 1, interval)
		assert.Equal(t, 20, next.Hour())
	})

	t.Run("garbage entries skipped", func(t *testing.T) {
		csv := fmt.Sprintf("oops,%d", d(2).UnixMilli())
		interval, _ := deriveLegacySchedule(csv, 0, now)
		assert.Equal(t, 1, interval)
	})
}
