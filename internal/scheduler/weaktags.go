package scheduler

import (
	"sort"

	"github.com/alexanderramin/mnemo/internal/domain"
)

// Weakness score components.
const (
	weakEaseWeight    = 20.0 // scaled by (3.0 - average ease)
	weakFailWeight    = 30.0 // scaled by the tag's fail rate
	sparseDataBonus   = 15.0 // fewer than sparseDataCutoff items carrying the tag
	sparseDataCutoff  = 3
	weaknessThreshold = 5.0
)

// TagWeakness aggregates retention evidence for one tag.
type TagWeakness struct {
	Tag        string
	Total      int     // items carrying the tag
	AvgEase    float64 // average ease factor across those items
	FailRate   float64 // failed ratings / total ratings, in [0, 1]
	Score      float64
	RatedCount int // total ratings observed for the tag
}

// WeakTags aggregates every tag across all items and surfaces the ones the
// learner struggles with. Tags with little evidence get a sparse-data bonus
// so they show up as provisionally weak. Only tags scoring above the
// threshold are returned, strongest weakness first.
func WeakTags(items []*domain.ReviewItem) []TagWeakness {
	type agg struct {
		total   int
		easeSum float64
		rated   int
		failed  int
	}
	byTag := make(map[string]*agg)

	for _, item := range items {
		ef := item.EaseFactor
		if ef <= 0 {
			ef = domain.DefaultEaseFactor
		}
		for _, tag := range item.Tags {
			a := byTag[tag]
			if a == nil {
				a = &agg{}
				byTag[tag] = a
			}
			a.total++
			a.easeSum += ef
			for _, rec := range item.History {
				a.rated++
				if rec.Rating.Failed() {
					a.failed++
				}
			}
		}
	}

	var weak []TagWeakness
	for tag, a := range byTag {
		avgEase := a.easeSum / float64(a.total)
		failRate := 0.0
		if a.rated > 0 {
			failRate = float64(a.failed) / float64(a.rated)
		}
		score := (domain.MaxEaseFactor-avgEase)*weakEaseWeight + failRate*weakFailWeight
		if a.total < sparseDataCutoff {
			score += sparseDataBonus
		}
		if score <= weaknessThreshold {
			continue
		}
		weak = append(weak, TagWeakness{
			Tag:        tag,
			Total:      a.total,
			AvgEase:    roundTo(avgEase, 2),
			FailRate:   roundTo(failRate, 2),
			Score:      roundTo(score, 1),
			RatedCount: a.rated,
		})
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Score != weak[j].Score {
			return weak[i].Score > weak[j].Score
		}
		return weak[i].Tag < weak[j].Tag
	})
	return weak
}
