package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// Engine runs the full analysis pipeline for one resource type:
// normalize -> anomaly detection -> night-time classification, then trend
// estimation, facility aggregation and issue detection over the flagged set.
// Flag attachment happens on the engine's private copy of the records and
// fully completes before the read-only passes run. Every call recomputes the
// thresholds and flags from scratch; nothing is cached between runs.
type Engine struct {
	resource domain.ResourceType
	settings Settings
	detector IssueDetector
}

func NewEngine(resource domain.ResourceType, detector IssueDetector, settings Settings) (*Engine, error) {
	if detector == nil {
		return nil, fmt.Errorf("an issue detector must be provided")
	}
	if settings.AnomalyPercentile < 0 || settings.AnomalyPercentile > 100 {
		return nil, fmt.Errorf("anomaly percentile %v outside [0,100]", settings.AnomalyPercentile)
	}
	if settings.AnomalyPercentile == 0 {
		settings.AnomalyPercentile = DefaultSettings().AnomalyPercentile
	}
	if len(settings.NightHours) == 0 {
		settings.NightHours = DefaultSettings().NightHours
	}

	return &Engine{
		resource: resource,
		settings: settings,
		detector: detector,
	}, nil
}

// NewElectricityEngine creates an engine with the night-idle issue detector.
func NewElectricityEngine(settings Settings) (*Engine, error) {
	return NewEngine(domain.ResourceElectricity, NewNightIdleDetector(DefaultNightIdleSettings()), settings)
}

// NewWaterEngine creates an engine with the leak-risk issue detector.
func NewWaterEngine(settings Settings) (*Engine, error) {
	return NewEngine(domain.ResourceWater, NewLeakRiskDetector(DefaultLeakRiskSettings()), settings)
}

func (e *Engine) Resource() domain.ResourceType {
	return e.resource
}

// Analyze runs the pipeline over the full input table and returns a fresh
// result owned by the caller. An empty table fails with ErrEmptyDataset so
// the caller can render a uniform error payload.
func (e *Engine) Analyze(ctx context.Context, input []domain.ConsumptionRecord) (*domain.AnalysisResult, error) {
	logger := zerolog.Ctx(ctx)

	if len(input) == 0 {
		return nil, ErrEmptyDataset
	}

	records, err := Normalize(input)
	if err != nil {
		return nil, err
	}

	stats, err := DetectAnomalies(records, e.settings.AnomalyPercentile)
	if err != nil {
		return nil, err
	}
	ClassifyNightTime(records, e.settings.NightHours)

	// write phase done; the passes below only read the flagged set

	values := make([]float64, len(records))
	var total, peak, nightTotal float64
	anomalyCount := 0
	for i, r := range records {
		values[i] = r.Value
		total += r.Value
		if r.Value > peak {
			peak = r.Value
		}
		if r.IsNightTime {
			nightTotal += r.Value
		}
		if r.IsAnomaly {
			anomalyCount++
		}
	}

	result := &domain.AnalysisResult{
		Resource:          e.resource,
		Total:             total,
		Average:           stats.Mean,
		Peak:              peak,
		NightTotal:        nightTotal,
		AnomalyCount:      anomalyCount,
		AnomalyPercentage: float64(anomalyCount) / float64(len(records)) * 100,
		Threshold:         stats.Threshold,
		Trend:             EstimateTrend(values),
		Facilities:        AggregateFacilities(records),
		Issues:            e.detector.Detect(records, stats.Threshold),
		Records:           records,
	}

	logger.Debug().
		Str("resource", string(e.resource)).
		Int("records", len(records)).
		Int("anomalies", anomalyCount).
		Float64("threshold", stats.Threshold).
		Msg("analysis complete")

	return result, nil
}

// Anomalies returns the flagged records of a result sorted by consumption
// value, highest first.
func Anomalies(result *domain.AnalysisResult) []domain.ConsumptionRecord {
	anomalies := make([]domain.ConsumptionRecord, 0)
	for _, r := range result.Records {
		if r.IsAnomaly {
			anomalies = append(anomalies, r)
		}
	}
	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Value > anomalies[j].Value
	})
	return anomalies
}
