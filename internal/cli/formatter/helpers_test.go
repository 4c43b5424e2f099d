package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.AddDate(0, 0, 1), "Tomorrow"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"in five days", now.AddDate(0, 0, 5), "In 5d"},
		{"in three weeks", now.AddDate(0, 0, 21), "In 3w"},
		{"three days ago", now.AddDate(0, 0, -3), "3d ago"},
		{"months out", now.AddDate(0, 0, 90), "In 3mo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.t, now))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 5m", FormatMinutes(65))
	assert.Equal(t, "0m", FormatMinutes(-10))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 day", Plural(1, "day"))
	assert.Equal(t, "3 days", Plural(3, "day"))
	assert.Equal(t, "0 reviews", Plural(0, "review"))
}
