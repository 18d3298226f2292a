package analysis

import (
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

type facilityAccumulator struct {
	total     float64
	count     int
	anomalies int
}

// AggregateFacilities partitions the fully flagged record set by facility and
// computes per-facility totals, averages and anomaly counts. Facilities with
// zero records never appear; no empty buckets are materialized.
func AggregateFacilities(records []domain.ConsumptionRecord) map[string]domain.FacilityRollup {
	accumulators := make(map[string]*facilityAccumulator)

	for _, r := range records {
		acc, exists := accumulators[r.Facility]
		if !exists {
			acc = &facilityAccumulator{}
			accumulators[r.Facility] = acc
		}
		acc.total += r.Value
		acc.count++
		if r.IsAnomaly {
			acc.anomalies++
		}
	}

	rollups := make(map[string]domain.FacilityRollup, len(accumulators))
	for facility, acc := range accumulators {
		rollups[facility] = domain.FacilityRollup{
			Total:        acc.total,
			Average:      acc.total / float64(acc.count),
			AnomalyCount: acc.anomalies,
		}
	}
	return rollups
}
