package analysis

import (
	"fmt"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// Normalize validates raw rows and returns a copy in the canonical record
// shape. The copy belongs to the caller; derived flags on it start unset.
// Rows with an empty facility fail with a SchemaError, rows violating the
// value or hour invariants fail with a DomainError. No defaults are
// substituted for missing required fields.
func Normalize(records []domain.ConsumptionRecord) ([]domain.ConsumptionRecord, error) {
	out := make([]domain.ConsumptionRecord, len(records))
	for i, r := range records {
		if r.Facility == "" {
			return nil, &SchemaError{Column: "facility", Reason: fmt.Sprintf("row %d: empty value", i)}
		}
		if r.Value < 0 {
			return nil, &DomainError{Reason: fmt.Sprintf("row %d: negative consumption value %v", i, r.Value)}
		}
		if r.Hour < 0 || r.Hour > 23 {
			return nil, &DomainError{Reason: fmt.Sprintf("row %d: hour %d outside [0,23]", i, r.Hour)}
		}
		r.IsAnomaly = false
		r.AnomalySeverity = 0
		r.IsNightTime = false
		out[i] = r
	}
	return out, nil
}
