package analysis

import (
	"sort"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// LeakRiskSettings contains the threshold for leak-risk detection
type LeakRiskSettings struct {
	// FacilityAnomalyLimit is the per-facility anomaly count above which the
	// facility is considered at risk (default: 5)
	FacilityAnomalyLimit int
}

// DefaultLeakRiskSettings returns the default configuration for leak-risk detection
func DefaultLeakRiskSettings() LeakRiskSettings {
	return LeakRiskSettings{
		FacilityAnomalyLimit: 5,
	}
}

// LeakRiskDetector flags facilities whose concentration of anomalous water
// readings suggests a plumbing leak or continuous unattended usage.
type LeakRiskDetector struct {
	settings LeakRiskSettings
}

func NewLeakRiskDetector(settings LeakRiskSettings) *LeakRiskDetector {
	return &LeakRiskDetector{settings: settings}
}

func (d *LeakRiskDetector) Key() string { return "potential_leaks" }

func (d *LeakRiskDetector) Detect(records []domain.ConsumptionRecord, _ float64) domain.IssueReport {
	anomaliesPerFacility := make(map[string]int)
	anomalyCount := 0

	for _, r := range records {
		if r.IsAnomaly {
			anomaliesPerFacility[r.Facility]++
			anomalyCount++
		}
	}

	atRisk := []string{}
	for facility, count := range anomaliesPerFacility {
		if count > d.settings.FacilityAnomalyLimit {
			atRisk = append(atRisk, facility)
		}
	}
	// map iteration order is not stable; sort so reports are deterministic
	sort.Strings(atRisk)

	probability := domain.IssueSeverityLow
	if len(atRisk) > 0 {
		probability = domain.IssueSeverityHigh
	}

	return domain.LeakRiskReport{
		AnomalyCount:          anomalyCount,
		FacilitiesAtRisk:      atRisk,
		LeakProbability:       probability,
		RecommendedInspection: atRisk,
	}
}
