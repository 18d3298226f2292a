package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentileOf(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		p        float64
		expected float64
	}{
		{
			name:     "interpolates between ranks",
			values:   []float64{1, 2, 3, 4},
			p:        75,
			expected: 3.25,
		},
		{
			name:     "median of odd-length series",
			values:   []float64{5, 1, 3, 2, 4},
			p:        50,
			expected: 3,
		},
		{
			name:     "zero percentile is the minimum",
			values:   []float64{4, 2, 9},
			p:        0,
			expected: 2,
		},
		{
			name:     "hundredth percentile is the maximum",
			values:   []float64{4, 2, 9},
			p:        100,
			expected: 9,
		},
		{
			name:     "single value",
			values:   []float64{7},
			p:        75,
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, percentileOf(tt.values, tt.p), 1e-9)
		})
	}
}

func TestPercentileOf_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	percentileOf(values, 50)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMeanAndStdDev(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	m := mean(values)
	assert.InDelta(t, 3.0, m, 1e-9)
	assert.InDelta(t, 1.5811388300841898, sampleStdDev(values, m), 1e-9)
}

func TestSampleStdDev_DegenerateSeries(t *testing.T) {
	assert.Equal(t, 0.0, sampleStdDev([]float64{42}, 42))
	assert.Equal(t, 0.0, sampleStdDev([]float64{5, 5, 5}, 5))
}
