// Package stats implements the numeric contract behind the calculation
// tools: plain aggregations over number sequences and the weighted rating
// average used to summarize categorical rating distributions.
package stats

import (
	"fmt"
	"math"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	Operation_Sum     = "sum"
	Operation_Average = "average"
	Operation_StdDev  = "std_dev"
)

// CalculationResult echoes the input alongside the requested aggregations.
type CalculationResult struct {
	Input   CalculationInput   `json:"input"`
	Results map[string]float64 `json:"results"`
}

// CalculationInput is the echoed input section of a calculation result.
type CalculationInput struct {
	Numbers []float64 `json:"numbers"`
	Count   int       `json:"count"`
}

// Sum returns the arithmetic total of the values. Empty input yields 0.
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Average returns the arithmetic mean of the values. Empty input yields 0,
// never NaN.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// PopulationStdDev returns the square root of the mean squared deviation
// from the average. Empty or single-element input yields 0.
func PopulationStdDev(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	variance := stat.MomentAbout(2, values, Average(values), nil)
	return math.Sqrt(variance)
}

// Calculate runs the selected operations over the values. An empty
// operations selector defaults to all of sum, average and std_dev.
func Calculate(numbers []float64, operations []string) (CalculationResult, error) {
	for _, n := range numbers {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return CalculationResult{}, domain.NewValidationErr("all elements in numbers must be finite numbers")
		}
	}

	if len(operations) == 0 {
		operations = []string{Operation_Sum, Operation_Average, Operation_StdDev}
	}

	results := make(map[string]float64, len(operations))
	for _, op := range operations {
		switch op {
		case Operation_Sum:
			results[Operation_Sum] = Sum(numbers)
		case Operation_Average:
			results[Operation_Average] = Average(numbers)
		case Operation_StdDev:
			results[Operation_StdDev] = PopulationStdDev(numbers)
		default:
			return CalculationResult{}, domain.NewValidationErr(fmt.Sprintf("unknown operation: %s", op))
		}
	}

	return CalculationResult{
		Input: CalculationInput{
			Numbers: numbers,
			Count:   len(numbers),
		},
		Results: results,
	}, nil
}
