package domain

type IssueSeverity string

const (
	IssueSeverityLow    IssueSeverity = "LOW"
	IssueSeverityMedium IssueSeverity = "MEDIUM"
	IssueSeverityHigh   IssueSeverity = "HIGH"
)

// IssueReport is the resource-specific part of an AnalysisResult.
type IssueReport interface {
	issueReport()
}

// NightIdleReport flags unexplained high consumption during the night window.
type NightIdleReport struct {
	HighNightUsageCount     int
	NightConsumptionPercent float64
	Severity                IssueSeverity
}

func (NightIdleReport) issueReport() {}

// LeakRiskReport flags facilities with a suspicious concentration of
// anomalous readings.
type LeakRiskReport struct {
	AnomalyCount          int
	FacilitiesAtRisk      []string
	LeakProbability       IssueSeverity
	RecommendedInspection []string
}

func (LeakRiskReport) issueReport() {}
