// Package scoring converts match counts into percentages and final scores,
// and defines the pluggable scoring strategy seam.
package scoring

import (
	"math"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Bonus tiers reward strong raw coverage. Both tiers apply above the upper
// threshold, so a raw score of 90 receives the full +10.
const (
	bonusTierLow       = 70.0
	bonusTierHigh      = 85.0
	bonusTierIncrement = 5.0

	maxScore = 100.0
)

// Round1 rounds to one decimal place, halves away from zero. All score
// rounding in this package goes through it so tie-breaking stays uniform.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Calculate computes per-category percentages and the bonus-adjusted
// overall score from match results. Percentages are written back onto the
// passed results so the caller's slice carries the final numbers.
//
// A role with zero total keywords yields a zero score with an empty
// category map instead of a division fault.
func Calculate(results []types.CategoryResult) types.ScoreInfo {
	totalKeywords := 0
	totalFound := 0
	for i := range results {
		totalKeywords += results[i].Total()
		totalFound += results[i].Count
	}

	if totalKeywords == 0 {
		return types.ScoreInfo{Overall: 0, ByCategory: map[string]float64{}}
	}

	byCategory := make(map[string]float64, len(results))
	for i := range results {
		r := &results[i]
		if r.Total() > 0 {
			r.Percentage = Round1(100 * float64(r.Count) / float64(r.Total()))
		} else {
			r.Percentage = 0
		}
		byCategory[r.Category] = r.Percentage
	}

	raw := Round1(100 * float64(totalFound) / float64(totalKeywords))

	bonus := 0.0
	if raw > bonusTierLow {
		bonus += bonusTierIncrement
	}
	if raw > bonusTierHigh {
		bonus += bonusTierIncrement
	}

	overall := raw + bonus
	if overall > maxScore {
		overall = maxScore
	}

	return types.ScoreInfo{
		Overall:       overall,
		ByCategory:    byCategory,
		TotalKeywords: totalKeywords,
		TotalFound:    totalFound,
		Bonus:         bonus,
	}
}
