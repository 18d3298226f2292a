package synthetic

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	csvstore "github.com/tonyloki/-EcoSense-AI/pkg/store/csv"
)

func testSettings() Settings {
	return Settings{
		Days:       3,
		Facilities: []string{"Building A", "Library Block"},
		Seed:       42,
		Start:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerator_Electricity(t *testing.T) {
	records := NewGenerator(testSettings()).Electricity()

	require.Len(t, records, 3*2*24)

	for _, r := range records {
		assert.GreaterOrEqual(t, r.Value, 0.0)
		assert.GreaterOrEqual(t, r.Hour, 0)
		assert.LessOrEqual(t, r.Hour, 23)
		assert.Contains(t, []string{"Building A", "Library Block"}, r.Facility)
		assert.Equal(t, r.Hour, r.Timestamp.Hour())
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	first := NewGenerator(testSettings()).Water()
	second := NewGenerator(testSettings()).Water()

	assert.Equal(t, first, second)
}

func TestGenerator_SeedChangesOutput(t *testing.T) {
	settings := testSettings()
	first := NewGenerator(settings).Electricity()

	settings.Seed = 43
	second := NewGenerator(settings).Electricity()

	assert.NotEqual(t, first, second)
}

func TestGenerator_DefaultsApplied(t *testing.T) {
	g := NewGenerator(Settings{Seed: 1, Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Days: 1})
	records := g.Electricity()

	assert.Len(t, records, len(defaultFacilities)*24)
}

func TestGenerator_WaterPeakHoursRunHigher(t *testing.T) {
	settings := testSettings()
	settings.Days = 30
	records := NewGenerator(settings).Water()

	var peakTotal, offPeakTotal float64
	var peakCount, offPeakCount int
	peaks := map[int]bool{7: true, 8: true, 9: true, 18: true, 19: true, 20: true}
	for _, r := range records {
		if peaks[r.Hour] {
			peakTotal += r.Value
			peakCount++
		} else {
			offPeakTotal += r.Value
			offPeakCount++
		}
	}

	assert.Greater(t, peakTotal/float64(peakCount), offPeakTotal/float64(offPeakCount))
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	records := NewGenerator(testSettings()).Electricity()
	path := filepath.Join(t.TempDir(), "electricity.csv")

	require.NoError(t, WriteCSV(path, domain.ResourceElectricity, records))

	loaded, err := csvstore.NewStore(path, domain.ResourceElectricity).LoadRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, len(records))

	assert.Equal(t, records[0].Facility, loaded[0].Facility)
	assert.Equal(t, records[0].Hour, loaded[0].Hour)
	assert.InDelta(t, records[0].Value, loaded[0].Value, 1e-9)
}
