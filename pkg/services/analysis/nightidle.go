package analysis

import (
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// NightIdleSettings contains the severity breakpoints for night-idle
// detection. The breakpoints are fixed counts, not adaptive to dataset size.
type NightIdleSettings struct {
	// HighCount is the event count above which severity is HIGH (default: 10)
	HighCount int
	// MediumCount is the event count above which severity is MEDIUM (default: 5)
	MediumCount int
}

// DefaultNightIdleSettings returns the default breakpoints for night-idle detection
func DefaultNightIdleSettings() NightIdleSettings {
	return NightIdleSettings{
		HighCount:   10,
		MediumCount: 5,
	}
}

// NightIdleDetector flags unexplained high electricity consumption during the
// night window: night-time records whose value exceeds the anomaly threshold.
type NightIdleDetector struct {
	settings NightIdleSettings
}

func NewNightIdleDetector(settings NightIdleSettings) *NightIdleDetector {
	return &NightIdleDetector{settings: settings}
}

func (d *NightIdleDetector) Key() string { return "night_idle_issues" }

func (d *NightIdleDetector) Detect(records []domain.ConsumptionRecord, threshold float64) domain.IssueReport {
	var total, nightTotal float64
	highNightUsage := 0

	for _, r := range records {
		total += r.Value
		if !r.IsNightTime {
			continue
		}
		nightTotal += r.Value
		if r.Value > threshold {
			highNightUsage++
		}
	}

	severity := domain.IssueSeverityLow
	switch {
	case highNightUsage > d.settings.HighCount:
		severity = domain.IssueSeverityHigh
	case highNightUsage > d.settings.MediumCount:
		severity = domain.IssueSeverityMedium
	}

	nightPercent := 0.0
	if total > 0 {
		nightPercent = nightTotal / total * 100
	}

	return domain.NightIdleReport{
		HighNightUsageCount:     highNightUsage,
		NightConsumptionPercent: nightPercent,
		Severity:                severity,
	}
}
