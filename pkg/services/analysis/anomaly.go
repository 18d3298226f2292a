package analysis

import (
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// AnomalyStats holds the set-wide statistics computed by the detector.
type AnomalyStats struct {
	Threshold float64
	Mean      float64
	StdDev    float64
}

// DetectAnomalies computes the percentile threshold over the record values
// and attaches the anomaly flag and severity score to every record in place.
// Only values strictly above the threshold are flagged; a value exactly equal
// to the threshold is not an anomaly. Severity is a sign-preserving z-score
// computed for every record, not only flagged ones.
func DetectAnomalies(records []domain.ConsumptionRecord, percentile float64) (AnomalyStats, error) {
	if len(records) == 0 {
		return AnomalyStats{}, ErrEmptyDataset
	}

	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}

	stats := AnomalyStats{
		Threshold: percentileOf(values, percentile),
		Mean:      mean(values),
	}
	stats.StdDev = sampleStdDev(values, stats.Mean)

	for i := range records {
		records[i].IsAnomaly = records[i].Value > stats.Threshold

		severity, err := severityScore(records[i].Value, stats.Mean, stats.StdDev)
		if err != nil {
			return AnomalyStats{}, err
		}
		records[i].AnomalySeverity = severity
	}

	return stats, nil
}

// severityScore standardizes a value against the dataset mean. A constant
// series has no spread: the score is 0 when the value sits on the mean, and
// any other combination fails rather than producing NaN.
func severityScore(value, mean, stdDev float64) (float64, error) {
	if stdDev == 0 {
		if value == mean {
			return 0, nil
		}
		return 0, &DomainError{Reason: "severity indeterminate: zero standard deviation with value off the mean"}
	}
	return (value - mean) / stdDev, nil
}
