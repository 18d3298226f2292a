package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

func recordsWithValues(values ...float64) []domain.ConsumptionRecord {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := make([]domain.ConsumptionRecord, len(values))
	for i, v := range values {
		records[i] = domain.ConsumptionRecord{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Facility:  "Main Building",
			Value:     v,
			Hour:      (12 + i) % 24,
		}
	}
	return records
}

func TestDetectAnomalies_FlagsStrictlyAboveThreshold(t *testing.T) {
	records := recordsWithValues(1, 2, 3, 4)

	stats, err := DetectAnomalies(records, 75)
	require.NoError(t, err)

	assert.InDelta(t, 3.25, stats.Threshold, 1e-9)
	assert.False(t, records[0].IsAnomaly)
	assert.False(t, records[1].IsAnomaly)
	assert.False(t, records[2].IsAnomaly)
	assert.True(t, records[3].IsAnomaly)

	// sign-preserving z-scores against the whole series
	assert.InDelta(t, 1.161895, records[3].AnomalySeverity, 1e-6)
	assert.InDelta(t, -1.161895, records[0].AnomalySeverity, 1e-6)
}

func TestDetectAnomalies_ConstantSeries(t *testing.T) {
	records := recordsWithValues(10, 10, 10, 10)

	stats, err := DetectAnomalies(records, 75)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, stats.Threshold, 1e-9)
	for _, r := range records {
		assert.False(t, r.IsAnomaly)
		assert.Equal(t, 0.0, r.AnomalySeverity)
	}
}

func TestDetectAnomalies_EmptyInput(t *testing.T) {
	_, err := DetectAnomalies(nil, 75)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDetectAnomalies_Rerun(t *testing.T) {
	records := recordsWithValues(1, 2, 3, 4)

	first, err := DetectAnomalies(records, 75)
	require.NoError(t, err)
	second, err := DetectAnomalies(records, 75)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, records[3].IsAnomaly)
}

func TestSeverityScore_ZeroSpread(t *testing.T) {
	score, err := severityScore(5, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	_, err = severityScore(6, 5, 0)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
}
