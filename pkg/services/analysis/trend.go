package analysis

import (
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// EstimateTrend labels a value series by comparing the mean of its first and
// second halves. The split happens at len/2 in encountered row order (the
// first half is the smaller one for odd lengths); the series is not re-sorted
// chronologically, so callers that want a time trend must supply a
// time-ordered series. A zero first-half mean reports a stable trend: zero
// baseline consumption is treated as no discernible trend, not a failure.
func EstimateTrend(values []float64) domain.TrendDirection {
	if len(values) < 2 {
		return domain.TrendInsufficientData
	}

	mid := len(values) / 2
	first := mean(values[:mid])
	second := mean(values[mid:])

	if first == 0 {
		return domain.TrendStable
	}

	diffPercent := (second - first) / first * 100
	switch {
	case diffPercent > 5:
		return domain.TrendIncreasing
	case diffPercent < -5:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}
