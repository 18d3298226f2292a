package adapters

import (
	"fmt"
	"math"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/api"
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// MapAnalysisResultToAPI converts a domain result into the keyed report shape
// consumed by the report and prompt layers. Consumption keys are suffixed
// with the resource unit (consumption_kwh vs consumption_gallons); values are
// rounded to two decimals.
func MapAnalysisResultToAPI(result *domain.AnalysisResult) api.AnalysisReport {
	unit := result.Resource.Unit()

	facilities := make(map[string]any, len(result.Facilities))
	for name, rollup := range result.Facilities {
		facilities[name] = map[string]any{
			"total_" + unit: round2(rollup.Total),
			"avg_" + unit:   round2(rollup.Average),
			"anomalies":     rollup.AnomalyCount,
		}
	}

	report := api.AnalysisReport{
		fmt.Sprintf("total_consumption_%s", unit):   round2(result.Total),
		fmt.Sprintf("average_consumption_%s", unit): round2(result.Average),
		fmt.Sprintf("peak_consumption_%s", unit):    round2(result.Peak),
		fmt.Sprintf("night_consumption_%s", unit):   round2(result.NightTotal),
		"anomalies_detected":                        result.AnomalyCount,
		"anomaly_threshold":                         round2(result.Threshold),
		"consumption_trend":                         string(result.Trend),
		"facility_analysis":                         facilities,
		"anomaly_percentage":                        round2(result.AnomalyPercentage),
	}

	switch issues := result.Issues.(type) {
	case domain.NightIdleReport:
		report["night_idle_issues"] = api.NightIdleIssues{
			HighNightConsumptionCount:  issues.HighNightUsageCount,
			NightConsumptionPercentage: round2(issues.NightConsumptionPercent),
			IssueSeverity:              string(issues.Severity),
		}
	case domain.LeakRiskReport:
		report["potential_leaks"] = api.PotentialLeaks{
			HighAnomalyCount:      issues.AnomalyCount,
			FacilitiesAtRisk:      issues.FacilitiesAtRisk,
			LeakProbability:       string(issues.LeakProbability),
			RecommendedInspection: issues.RecommendedInspection,
		}
	}

	return report
}

func MapAnomalyRecordToAPI(record domain.ConsumptionRecord) api.AnomalyRecord {
	return api.AnomalyRecord{
		Date:            record.Timestamp.Format("2006-01-02"),
		Hour:            record.Hour,
		Facility:        record.Facility,
		Consumption:     round2(record.Value),
		AnomalySeverity: round2(record.AnomalySeverity),
	}
}

func MapAnomalyRecordsToAPI(records []domain.ConsumptionRecord) []api.AnomalyRecord {
	out := make([]api.AnomalyRecord, 0, len(records))
	for _, r := range records {
		out = append(out, MapAnomalyRecordToAPI(r))
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
