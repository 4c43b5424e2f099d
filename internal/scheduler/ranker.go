package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// Priority score components. Each item is scored in isolation; there is no
// cross-item normalization.
const (
	overdueWeight      = 10.0 // per overdue day, fractional days allowed
	masteryWeight      = 15.0 // scaled by (3.0 - easeFactor)
	recentFailureBoost = 20.0 // last rating was Forgot or Hard
	failureBoostCutoff = domain.RatingHard
)

// difficultyWeights is the fixed lookup table for the difficulty component.
var difficultyWeights = map[domain.Difficulty]float64{
	domain.DifficultyHard:    15,
	domain.DifficultyMedium:  10,
	domain.DifficultyEasy:    5,
	domain.DifficultyUnknown: 8,
}

// RankedItem pairs a due item with its computed priority score.
type RankedItem struct {
	Item          *domain.ReviewItem
	PriorityScore float64
}

// PriorityScore computes one item's review priority at the given instant,
// rounded to one decimal place.
func PriorityScore(item *domain.ReviewItem, now time.Time) float64 {
	overdueDays := now.Sub(item.NextReview).Hours() / 24
	if overdueDays < 0 {
		overdueDays = 0
	}

	ef := item.EaseFactor
	if ef <= 0 {
		ef = domain.DefaultEaseFactor
	}

	score := overdueDays*overdueWeight + (domain.MaxEaseFactor-ef)*masteryWeight

	w, ok := difficultyWeights[item.Difficulty]
	if !ok {
		w = difficultyWeights[domain.DifficultyUnknown]
	}
	score += w

	if last := item.LastRecord(); last != nil && last.Rating <= failureBoostCutoff {
		score += recentFailureBoost
	}

	return roundTo(score, 1)
}

// Rank scores the given due items and orders them by descending priority.
// The sort is stable, so true ties retain input order. Items are not
// mutated; the input slice is not reordered.
func Rank(items []*domain.ReviewItem, now time.Time) []RankedItem {
	ranked := make([]RankedItem, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, RankedItem{
			Item:          item,
			PriorityScore: PriorityScore(item, now),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})
	return ranked
}
