package importer

import (
	"fmt"
	"strings"
)

var validDifficulties = map[string]bool{"": true, "easy": true, "medium": true, "hard": true, "unknown": true}

// ValidateExportSchema checks an export for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateExportSchema(schema *ExportSchema) []error {
	var errs []error

	for key, p := range schema.Problems {
		errs = append(errs, validateProblem(key, &p)...)
	}
	errs = append(errs, validatePracticeLog(schema.PracticeLog)...)

	return errs
}

func validateProblem(key string, p *ProblemExport) []error {
	var errs []error

	if p.Slug != "" && p.Slug != key {
		errs = append(errs, fmt.Errorf("problems[%s]: slug field %q does not match its key", key, p.Slug))
	}
	if key == "" {
		errs = append(errs, fmt.Errorf("problems: empty slug key"))
	}
	if p.Title == "" {
		errs = append(errs, fmt.Errorf("problems[%s]: title is required", key))
	}
	// Extension exports carry difficulties as scraped, capitalized.
	if !validDifficulties[strings.ToLower(p.Difficulty)] {
		errs = append(errs, fmt.Errorf("problems[%s]: invalid difficulty %q", key, p.Difficulty))
	}
	if p.AddedAt < 0 {
		errs = append(errs, fmt.Errorf("problems[%s]: addedAt must not be negative", key))
	}
	if p.CurrentInterval < 0 {
		errs = append(errs, fmt.Errorf("problems[%s]: currentInterval must not be negative", key))
	}
	for i, ts := range p.ReviewDates {
		if ts <= 0 {
			errs = append(errs, fmt.Errorf("problems[%s]: reviewDates[%d] is not a valid timestamp", key, i))
		}
	}
	for i, ts := range p.CompletedReviews {
		if ts <= 0 {
			errs = append(errs, fmt.Errorf("problems[%s]: completedReviews[%d] is not a valid timestamp", key, i))
		}
	}

	return errs
}

func validatePracticeLog(entries []PracticeExport) []error {
	var errs []error

	for i, e := range entries {
		if e.Slug == "" {
			errs = append(errs, fmt.Errorf("practiceLog[%d]: slug is required", i))
		}
		if e.LoggedAt <= 0 {
			errs = append(errs, fmt.Errorf("practiceLog[%d]: loggedAt is not a valid timestamp", i))
		}
	}

	return errs
}
