package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// IntervalResult is the scheduling decision produced by one rating.
type IntervalResult struct {
	IntervalDays int
	EaseFactor   float64
	NextReview   time.Time
}

// ComputeNext applies the SM-2 variant to an item's current state and a
// rating. Pure: the item is never mutated; calling twice with identical
// inputs yields identical output. The caller owns persisting the result.
//
// Rating rules:
//   - Forgot: interval resets to 1, ease drops by 0.2
//   - Hard:   interval grows 20%, ease drops by 0.15
//   - Good:   interval multiplies by ease (first review jumps to 3), ease unchanged
//   - Easy:   interval multiplies by ease with a 1.3 bonus (first review jumps
//     to 7), ease rises by 0.15
//
// Any other rating value takes the Good-like default rather than erroring.
// Ease stays within [1.3, 3.0] and is rounded to two decimals; the interval
// never drops below 1 day.
func ComputeNext(item *domain.ReviewItem, rating domain.Rating, now time.Time) IntervalResult {
	ef := item.EaseFactor
	if ef <= 0 {
		ef = domain.DefaultEaseFactor
	}
	prev := item.IntervalDays
	if prev < 1 {
		prev = 1
	}

	var interval int
	switch rating {
	case domain.RatingForgot:
		interval = 1
		ef = math.Max(domain.MinEaseFactor, ef-0.2)
	case domain.RatingHard:
		interval = maxInt(1, int(math.Round(float64(prev)*1.2)))
		ef = math.Max(domain.MinEaseFactor, ef-0.15)
	case domain.RatingGood:
		if prev <= 1 {
			interval = 3
		} else {
			interval = int(math.Round(float64(prev) * ef))
		}
	case domain.RatingEasy:
		if prev <= 1 {
			interval = 7
		} else {
			interval = int(math.Round(float64(prev) * ef * 1.3))
		}
		ef = math.Min(domain.MaxEaseFactor, ef+0.15)
	default:
		interval = maxInt(1, int(math.Round(float64(prev)*ef)))
	}

	return IntervalResult{
		IntervalDays: interval,
		EaseFactor:   roundTo(ef, 2),
		NextReview:   domain.AtReminderTime(now.AddDate(0, 0, interval)),
	}
}

// roundTo rounds v to the given number of decimal places, half away from zero.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
