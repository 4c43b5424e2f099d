package contract

// ExportRequest writes calendar events for one item's remaining schedule.
type ExportRequest struct {
	Slug string
	// Path is the target .ics file; empty uses <slug>.ics in the working
	// directory.
	Path string
	// Occurrences is how many future review dates to project, minimum 1.
	Occurrences int
}

type ExportResponse struct {
	Path     string
	EventIDs []string
	// Skipped counts occurrences that failed to encode and were left out.
	Skipped int
}
