package analysis

import (
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// IssueDetector derives a resource-specific issue report from the flagged
// record set and the computed anomaly threshold. Implementations require the
// anomaly and night-time flags to already be attached; running a detector
// before the base passes is a contract violation, not a runtime error.
type IssueDetector interface {
	// Key is the report key under which the issue report is published.
	Key() string
	Detect(records []domain.ConsumptionRecord, threshold float64) domain.IssueReport
}
