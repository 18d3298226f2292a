package domain

type TrendDirection string

const (
	TrendIncreasing       TrendDirection = "increasing"
	TrendDecreasing       TrendDirection = "decreasing"
	TrendStable           TrendDirection = "stable"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// FacilityRollup aggregates consumption for a single facility.
type FacilityRollup struct {
	Total        float64
	Average      float64
	AnomalyCount int
}

// AnalysisResult is the output of one analysis run. It is created fresh per
// run, never mutated after return, and owned by the caller. Records holds the
// fully flagged record set backing the aggregates.
type AnalysisResult struct {
	Resource          ResourceType
	Total             float64
	Average           float64
	Peak              float64
	NightTotal        float64
	AnomalyCount      int
	AnomalyPercentage float64
	Threshold         float64
	Trend             TrendDirection
	Facilities        map[string]FacilityRollup
	Issues            IssueReport
	Records           []ConsumptionRecord
}
