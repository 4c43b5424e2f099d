package contract

import "time"

// StatsRequest asks for the progress dashboard data.
type StatsRequest struct {
	Now *time.Time
}

type StatsResponse struct {
	GeneratedAt time.Time
	Streak      StreakStats
	WeakTags    []TagWeakness
	TotalItems  int
	DueCount    int
}

// TagCount pairs a tag with how many records carry it.
type TagCount struct {
	Tag   string
	Count int
}

type TagsRequest struct {
	Now *time.Time
}

type TagsResponse struct {
	// Today covers practice logged on the request day.
	Today []TagCount
	// All covers every tracked item and practice entry.
	All []TagCount
}
