package analysis

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indicates there were no rows to analyze. Callers are
// expected to render it as a structured {"error": ...} payload rather than
// failing the whole request.
var ErrEmptyDataset = errors.New("no data available")

// SchemaError reports a missing or malformed required column.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing required column %q", e.Column)
	}
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

// DomainError reports input on which a statistic is indeterminate, such as a
// severity score over a degenerate constant series.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}
