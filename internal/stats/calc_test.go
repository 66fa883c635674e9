package stats

import (
	"math"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 0.0, Sum([]float64{}))
	assert.Equal(t, 10.5, Sum([]float64{1, 2.5, 3, 4}))
	assert.Equal(t, -3.0, Sum([]float64{-1, -2}))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 3.0, Average([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 2.5, Average([]float64{2, 3}))
}

func TestAverage_EqualsSumOverLen(t *testing.T) {
	sequences := [][]float64{
		{1},
		{4.2, 1.8},
		{10, -10, 5, 7, 3.3},
		{0, 0, 0},
	}
	for _, xs := range sequences {
		assert.InDelta(t, Sum(xs)/float64(len(xs)), Average(xs), 1e-12)
	}
}

func TestPopulationStdDev(t *testing.T) {
	assert.Equal(t, 0.0, PopulationStdDev(nil))
	assert.Equal(t, 0.0, PopulationStdDev([]float64{42}))
	// Classic textbook sequence with population std dev of exactly 2.
	assert.InDelta(t, 2.0, PopulationStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.1)
	assert.Equal(t, 0.0, PopulationStdDev([]float64{3, 3, 3}))
}

func TestCalculate(t *testing.T) {
	tests := map[string]struct {
		numbers    []float64
		operations []string
		expected   map[string]float64
		expectErr  bool
	}{
		"defaults-to-all-operations": {
			numbers: []float64{1, 2, 3},
			expected: map[string]float64{
				"sum":     6,
				"average": 2,
				"std_dev": math.Sqrt(2.0 / 3.0),
			},
		},
		"selected-operation-only": {
			numbers:    []float64{1, 2, 3},
			operations: []string{"sum"},
			expected:   map[string]float64{"sum": 6},
		},
		"empty-input-yields-zeroes": {
			numbers: []float64{},
			expected: map[string]float64{
				"sum":     0,
				"average": 0,
				"std_dev": 0,
			},
		},
		"rejects-nan": {
			numbers:   []float64{1, math.NaN()},
			expectErr: true,
		},
		"rejects-infinity": {
			numbers:   []float64{math.Inf(1)},
			expectErr: true,
		},
		"rejects-unknown-operation": {
			numbers:    []float64{1, 2},
			operations: []string{"median"},
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := Calculate(tt.numbers, tt.operations)
			if tt.expectErr {
				require.Error(t, err)
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.numbers), result.Input.Count)
			require.Len(t, result.Results, len(tt.expected))
			for op, expected := range tt.expected {
				assert.InDelta(t, expected, result.Results[op], 1e-9, op)
			}
		})
	}
}
