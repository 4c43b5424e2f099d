package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExportSchema is the top-level JSON structure of a browser-extension
// storage export: the tracked-problem map plus the flat practice log.
type ExportSchema struct {
	Problems    map[string]ProblemExport `json:"problems"`
	PracticeLog []PracticeExport         `json:"practiceLog"`
}

// ProblemExport is one tracked problem under the fixed-schedule layout.
// Timestamps are epoch milliseconds. reviewDates holds the precomputed
// reminder times and currentInterval indexes the next pending one.
type ProblemExport struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	URL              string   `json:"url,omitempty"`
	Number           int      `json:"number,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	AddedAt          int64    `json:"addedAt"`
	ReviewDates      []int64  `json:"reviewDates"`
	CompletedReviews []int64  `json:"completedReviews,omitempty"`
	CurrentInterval  int      `json:"currentInterval"`
	CalendarEventIDs []string `json:"calendarEventIds,omitempty"`
}

// PracticeExport is one practice-log record from the export.
type PracticeExport struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	LoggedAt int64    `json:"loggedAt"`
}

// LoadExportSchema reads and parses an extension export JSON file.
func LoadExportSchema(path string) (*ExportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ExportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing export file: %w", err)
	}
	return &schema, nil
}
