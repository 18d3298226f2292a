package domain

import "time"

type ResourceType string

const (
	ResourceElectricity ResourceType = "electricity"
	ResourceWater       ResourceType = "water"
)

// Unit returns the consumption unit suffix used in column and report keys.
func (r ResourceType) Unit() string {
	switch r {
	case ResourceWater:
		return "gallons"
	default:
		return "kwh"
	}
}

// ValueColumn returns the CSV column carrying the consumption value.
func (r ResourceType) ValueColumn() string {
	return "consumption_" + r.Unit()
}

// ConsumptionRecord is one row of the analyzed table. Timestamp, Facility,
// Value and Hour come from the input; the remaining fields are derived over
// the full record set and are meaningless until the detectors have run.
type ConsumptionRecord struct {
	Timestamp       time.Time
	Facility        string
	Value           float64
	Hour            int
	IsAnomaly       bool
	AnomalySeverity float64
	IsNightTime     bool
}
