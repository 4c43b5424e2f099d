package contract

import (
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// RateRequest records one completed review with its recall quality.
type RateRequest struct {
	Slug   string
	Rating domain.Rating
	Now    *time.Time
}

// RateResponse reports the scheduling state after the rating was applied.
type RateResponse struct {
	Slug         string
	Rating       domain.Rating
	IntervalDays int
	EaseFactor   float64
	NextReview   time.Time
	// Notified is set when the notification sink accepted the outcome line.
	Notified bool
}
