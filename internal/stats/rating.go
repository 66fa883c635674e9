package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
)

// RatingEntry is one tier of a categorical rating distribution. ID and
// Count are pointers so that absent values can be distinguished from zero.
type RatingEntry struct {
	ID      *float64 `json:"id"`
	Title   string   `json:"title"`
	Count   *float64 `json:"count"`
	Percent *float64 `json:"percent"`
}

// RatingBreakdownEntry is one tier of the weighted-average breakdown.
type RatingBreakdownEntry struct {
	ID            float64 `json:"id"`
	Title         string  `json:"title"`
	Count         float64 `json:"count"`
	Percent       float64 `json:"percent"`
	WeightedScore float64 `json:"weightedScore"`
}

// RatingAverage is the result of a weighted rating average calculation.
type RatingAverage struct {
	WeightedAverage float64                `json:"weightedAverage"`
	TotalRatings    float64                `json:"totalRatings"`
	Breakdown       []RatingBreakdownEntry `json:"breakdown"`
	Formula         string                 `json:"formula"`
}

// WeightedRatingAverage computes Σ(id×count)/Σ(count) over the rating tiers,
// rounded to 2 decimal places, with a per-tier breakdown and a
// human-readable formula string.
func WeightedRatingAverage(ratings []RatingEntry) (RatingAverage, error) {
	if len(ratings) == 0 {
		return RatingAverage{}, domain.NewValidationErr("ratings array cannot be empty")
	}

	for _, rating := range ratings {
		if rating.ID == nil || rating.Count == nil {
			return RatingAverage{}, domain.NewValidationErr("each rating must have numeric id and count properties")
		}
		if *rating.Count < 0 {
			return RatingAverage{}, domain.NewValidationErr("rating count cannot be negative")
		}
	}

	var (
		totalWeightedScore float64
		totalCount         float64
	)

	breakdown := make([]RatingBreakdownEntry, len(ratings))
	terms := make([]string, len(ratings))
	for i, rating := range ratings {
		weightedScore := *rating.ID * *rating.Count
		totalWeightedScore += weightedScore
		totalCount += *rating.Count

		entry := RatingBreakdownEntry{
			ID:            *rating.ID,
			Title:         rating.Title,
			Count:         *rating.Count,
			WeightedScore: weightedScore,
		}
		if entry.Title == "" {
			entry.Title = "unknown"
		}
		if rating.Percent != nil {
			entry.Percent = *rating.Percent
		}
		breakdown[i] = entry
		terms[i] = fmt.Sprintf("%s×%s", formatNumber(*rating.ID), formatNumber(*rating.Count))
	}

	if totalCount == 0 {
		return RatingAverage{}, domain.NewInvalidStateErr("total rating count is zero, cannot calculate average")
	}

	// Round once and reuse the value so the formula string always shows
	// the same result as the weightedAverage field.
	weightedAverage := math.Round(totalWeightedScore/totalCount*100) / 100

	return RatingAverage{
		WeightedAverage: weightedAverage,
		TotalRatings:    totalCount,
		Breakdown:       breakdown,
		Formula: fmt.Sprintf("(%s) / %s = %.2f",
			strings.Join(terms, " + "),
			formatNumber(totalCount),
			weightedAverage,
		),
	}, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
