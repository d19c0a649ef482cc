package calculate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		period   int
		expected float64
	}{
		{
			name:     "empty series falls back to zero",
			series:   nil,
			period:   5,
			expected: 0,
		},
		{
			name:     "short series falls back to last element",
			series:   []float64{1, 2, 3},
			period:   5,
			expected: 3,
		},
		{
			name:     "mean of the trailing window",
			series:   []float64{1, 2, 3, 4, 5, 6},
			period:   3,
			expected: 5,
		},
		{
			name:     "period equal to length",
			series:   []float64{2, 4, 6},
			period:   3,
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SMA(tt.series, tt.period), 1e-9)
		})
	}
}

func TestEMA(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		period   int
		expected float64
	}{
		{
			name:     "empty series falls back to zero",
			series:   nil,
			period:   5,
			expected: 0,
		},
		{
			name:     "short series falls back to last element",
			series:   []float64{7, 8},
			period:   5,
			expected: 8,
		},
		{
			// k = 2/3; seeded from the first element:
			// 1 -> 2*2/3+1/3 = 5/3 -> 3*2/3+5/9 = 23/9
			name:     "seeded from the first element",
			series:   []float64{1, 2, 3},
			period:   2,
			expected: 23.0 / 9.0,
		},
		{
			name:     "constant series stays constant",
			series:   []float64{5, 5, 5, 5, 5},
			period:   3,
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EMA(tt.series, tt.period), 1e-9)
		})
	}
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, stdDev([]float64{1, 2}, 5), "short series")
	assert.InDelta(t, 0.0, stdDev([]float64{4, 4, 4, 4}, 4), 1e-9, "flat series")
	// {2,4,4,4,5,5,7,9}: classic population stddev example, sigma = 2
	assert.InDelta(t, 2.0, stdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}, 8), 1e-9)
}

func TestClampStrength(t *testing.T) {
	assert.Equal(t, 100, clampStrength(140))
	assert.Equal(t, 0, clampStrength(-3))
	assert.Equal(t, 85, clampStrength(85.7))
}
