package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Store reads a consumption table from a CSV file. Required columns: a
// timestamp or date column, facility, and the resource value column. An
// explicit hour column is used when present; otherwise the hour is taken from
// the parsed timestamp, which is zero for date-only values.
type Store struct {
	path     string
	resource domain.ResourceType
}

func NewStore(path string, resource domain.ResourceType) *Store {
	return &Store{path: path, resource: resource}
}

func (s *Store) Path() string {
	return s.path
}

// LoadRecords reads the whole table into memory, preserving file row order.
func (s *Store) LoadRecords(ctx context.Context) ([]domain.ConsumptionRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	return s.readRecords(ctx, f)
}

func (s *Store) readRecords(ctx context.Context, r io.Reader) ([]domain.ConsumptionRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}

	valueColumn := s.resource.ValueColumn()
	timeColumn, ok := findTimeColumn(columns)
	if !ok {
		return nil, &analysis.SchemaError{Column: "timestamp"}
	}
	if _, ok := columns["facility"]; !ok {
		return nil, &analysis.SchemaError{Column: "facility"}
	}
	if _, ok := columns[valueColumn]; !ok {
		return nil, &analysis.SchemaError{Column: valueColumn}
	}
	hourIdx, hasHour := columns["hour"]

	var records []domain.ConsumptionRecord
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", row, err)
		}

		ts, err := parseTimestamp(field(fields, columns[timeColumn]))
		if err != nil {
			return nil, &analysis.SchemaError{Column: timeColumn, Reason: fmt.Sprintf("row %d: %v", row, err)}
		}

		value, err := strconv.ParseFloat(field(fields, columns[valueColumn]), 64)
		if err != nil {
			return nil, &analysis.SchemaError{Column: valueColumn, Reason: fmt.Sprintf("row %d: %v", row, err)}
		}

		hour := ts.Hour()
		if hasHour {
			raw := field(fields, hourIdx)
			if raw != "" {
				hour, err = strconv.Atoi(raw)
				if err != nil {
					return nil, &analysis.SchemaError{Column: "hour", Reason: fmt.Sprintf("row %d: %v", row, err)}
				}
			}
		}

		records = append(records, domain.ConsumptionRecord{
			Timestamp: ts,
			Facility:  field(fields, columns["facility"]),
			Value:     value,
			Hour:      hour,
		})
	}

	return records, nil
}

// findTimeColumn prefers the full timestamp over the date-only column.
func findTimeColumn(columns map[string]int) (string, bool) {
	for _, name := range []string{"timestamp", "date"} {
		if _, ok := columns[name]; ok {
			return name, true
		}
	}
	return "", false
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func field(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
