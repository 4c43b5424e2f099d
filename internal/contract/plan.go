package contract

import "time"

// PlanRequest asks for the daily plan. Now defaults to the current time; tests
// pin it for determinism.
type PlanRequest struct {
	Now *time.Time
}

type PlanResponse struct {
	GeneratedAt time.Time
	Plan        DailyPlan
	Warnings    []string
}

// DueRequest asks for the ranked due queue.
type DueRequest struct {
	Now *time.Time
	// Limit caps the returned queue; zero means unlimited.
	Limit int
}

type DueResponse struct {
	GeneratedAt  time.Time
	DueCount     int
	OverdueCount int
	Queue        []RankedItem
}
