package api

// AnalysisReport is the wire shape of an analysis run. Half of its keys carry
// a unit suffix that varies by resource type (kwh vs gallons), so the report
// is assembled as a map in the adapters package; the key names are relied on
// by downstream report and prompt formatting and must not change.
type AnalysisReport map[string]any

// AnalysisError is the uniform error shape rendered to callers instead of a
// failed response.
type AnalysisError struct {
	Error string `json:"error"`
}

type NightIdleIssues struct {
	HighNightConsumptionCount  int     `json:"high_night_consumption_count"`
	NightConsumptionPercentage float64 `json:"night_consumption_percentage"`
	IssueSeverity              string  `json:"issue_severity"`
}

type PotentialLeaks struct {
	HighAnomalyCount      int      `json:"high_anomaly_count"`
	FacilitiesAtRisk      []string `json:"facilities_at_risk"`
	LeakProbability       string   `json:"leak_probability"`
	RecommendedInspection []string `json:"recommended_inspection"`
}

type AnomalyRecord struct {
	Date            string  `json:"date"`
	Hour            int     `json:"hour"`
	Facility        string  `json:"facility"`
	Consumption     float64 `json:"consumption"`
	AnomalySeverity float64 `json:"anomaly_severity"`
}

type Resource struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type InsightResponse struct {
	Resource string `json:"resource"`
	Insight  string `json:"insight"`
}
