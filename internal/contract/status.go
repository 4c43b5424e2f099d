package contract

import (
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// StatusRequest looks up a single tracked problem.
type StatusRequest struct {
	Slug string
	Now  *time.Time
}

type StatusResponse struct {
	Tracked       bool
	Item          *domain.ReviewItem
	DueNow        bool
	Overdue       bool
	PriorityScore float64
	LoggedToday   bool
}
