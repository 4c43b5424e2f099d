package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertExportSchema_Problem(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	added := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d1 := time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 6, 4, 20, 0, 0, 0, time.UTC)
	d7 := time.Date(2025, 6, 8, 20, 0, 0, 0, time.UTC)

	schema := &ExportSchema{
		Problems: map[string]ProblemExport{
			"two-sum": {
				Slug:             "two-sum",
				Title:            "Two Sum",
				URL:              "https://leetcode.com/problems/two-sum/",
				Number:           1,
				Difficulty:       "easy",
				Tags:             []string{"array"},
				AddedAt:          added.UnixMilli(),
				ReviewDates:      []int64{d1.UnixMilli(), d3.UnixMilli(), d7.UnixMilli()},
				CompletedReviews: []int64{d1.UnixMilli()},
				CurrentInterval:  1,
				CalendarEventIDs: []string{"evt-1"},
			},
		},
	}

	result := ConvertExportSchema(schema, now)
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	assert.Equal(t, "two-sum", item.ID)
	assert.Equal(t, "Two Sum", item.Title)
	assert.Equal(t, domain.DifficultyEasy, item.Difficulty)
	assert.Equal(t, added, item.AddedAt)
	assert.Equal(t, domain.DefaultEaseFactor, item.EaseFactor)

	// Slot 1 is pending: the interval is the two-day gap back to slot 0 and
	// the next review lands on the slot-1 date at the reminder hour.
	assert.Equal(t, 2, item.IntervalDays)
	assert.Equal(t, domain.AtReminderTime(time.UnixMilli(d3.UnixMilli())), item.NextReview)

	require.Len(t, item.CompletedReviews, 1)
	assert.Equal(t, d1, item.CompletedReviews[0])
	assert.Equal(t, []string{"evt-1"}, item.CalendarEventIDs)
}

func TestConvertExportSchema_ExhaustedSchedule(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	d1 := time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)

	schema := &ExportSchema{
		Problems: map[string]ProblemExport{
			"two-sum": {
				Title:           "Two Sum",
				AddedAt:         d1.UnixMilli(),
				ReviewDates:     []int64{d1.UnixMilli()},
				CurrentInterval: 1,
			},
		},
	}

	result := ConvertExportSchema(schema, now)
	require.Len(t, result.Items, 1)

	// Schedule fully consumed: restart one day out from now.
	item := result.Items[0]
	assert.Equal(t, 1, item.IntervalDays)
	assert.Equal(t, domain.AtReminderTime(now.AddDate(0, 0, 1)), item.NextReview)
}

func TestConvertExportSchema_CapitalizedDifficulty(t *testing.T) {
	now := time.Now().UTC()

	schema := &ExportSchema{
		Problems: map[string]ProblemExport{
			"two-sum":     {Title: "Two Sum", Difficulty: "Easy"},
			"coin-change": {Title: "Coin Change", Difficulty: "Medium"},
		},
	}

	result := ConvertExportSchema(schema, now)
	require.Len(t, result.Items, 2)
	assert.Equal(t, domain.DifficultyMedium, result.Items[0].Difficulty)
	assert.Equal(t, domain.DifficultyEasy, result.Items[1].Difficulty)
}

func TestConvertExportSchema_EmptyDifficultyBecomesUnknown(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	schema := &ExportSchema{
		Problems: map[string]ProblemExport{
			"two-sum": {Title: "Two Sum"},
		},
	}

	result := ConvertExportSchema(schema, now)
	require.Len(t, result.Items, 1)
	assert.Equal(t, domain.DifficultyUnknown, result.Items[0].Difficulty)
	// Missing addedAt falls back to the import time.
	assert.Equal(t, now, result.Items[0].AddedAt)
}

func TestConvertExportSchema_DeterministicOrder(t *testing.T) {
	now := time.Now().UTC()
	schema := &ExportSchema{
		Problems: map[string]ProblemExport{
			"zigzag-conversion": {Title: "Zigzag Conversion"},
			"add-two-numbers":   {Title: "Add Two Numbers"},
			"two-sum":           {Title: "Two Sum"},
		},
	}

	result := ConvertExportSchema(schema, now)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "add-two-numbers", result.Items[0].ID)
	assert.Equal(t, "two-sum", result.Items[1].ID)
	assert.Equal(t, "zigzag-conversion", result.Items[2].ID)
}

func TestConvertExportSchema_Practice(t *testing.T) {
	now := time.Now().UTC()
	logged := time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC)

	schema := &ExportSchema{
		PracticeLog: []PracticeExport{
			{Slug: "three-sum", Tags: []string{"two-pointers"}, LoggedAt: logged.UnixMilli()},
		},
	}

	result := ConvertExportSchema(schema, now)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "three-sum", entry.Slug)
	assert.Equal(t, "three-sum", entry.Title) // falls back to the slug
	assert.True(t, entry.Solved)
	assert.Equal(t, logged, entry.LoggedAt)
}
