package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
)

type mockAnalysisService struct {
	mock.Mock
}

func (m *mockAnalysisService) SupportedResources() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *mockAnalysisService) Analyze(ctx context.Context, resource string) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

func (m *mockAnalysisService) Anomalies(ctx context.Context, resource string) ([]domain.ConsumptionRecord, error) {
	args := m.Called(ctx, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsumptionRecord), args.Error(1)
}

type mockInsightService struct {
	mock.Mock
}

func (m *mockInsightService) AnalysisInsight(ctx context.Context, result *domain.AnalysisResult) (string, error) {
	args := m.Called(ctx, result)
	return args.String(0), args.Error(1)
}

func electricityResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Resource:          domain.ResourceElectricity,
		Total:             14400,
		Average:           144,
		Peak:              500,
		NightTotal:        5500,
		AnomalyCount:      11,
		AnomalyPercentage: 11,
		Threshold:         100,
		Trend:             domain.TrendIncreasing,
		Facilities: map[string]domain.FacilityRollup{
			"Main Building": {Total: 14400, Average: 144, AnomalyCount: 11},
		},
		Issues: domain.NightIdleReport{
			HighNightUsageCount:     11,
			NightConsumptionPercent: 38.19,
			Severity:                domain.IssueSeverityHigh,
		},
	}
}

func routerFixture(analysisSvc *mockAnalysisService, insightSvc *mockInsightService) http.Handler {
	config := Config{
		Dependencies: Dependencies{
			Analysis: analysisSvc,
			Logger:   zerolog.Nop(),
		},
	}
	if insightSvc != nil {
		config.Dependencies.Insights = insightSvc
	}
	return ConfigureRouter(config)
}

func doRequest(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestWebAPI_ListResources(t *testing.T) {
	analysisSvc := &mockAnalysisService{}
	analysisSvc.On("SupportedResources").Return([]string{"electricity", "water"})

	recorder := doRequest(t, routerFixture(analysisSvc, nil), http.MethodGet, "/api/v1/resources")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var resources []map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resources))
	require.Len(t, resources, 2)
	assert.Equal(t, "electricity", resources[0]["name"])
	assert.Equal(t, "kwh", resources[0]["unit"])
	assert.Equal(t, "gallons", resources[1]["unit"])
}

func TestWebAPI_GetAnalysis(t *testing.T) {
	analysisSvc := &mockAnalysisService{}
	analysisSvc.On("Analyze", mock.Anything, "electricity").Return(electricityResult(), nil)

	recorder := doRequest(t, routerFixture(analysisSvc, nil), http.MethodGet, "/api/v1/resources/electricity/analysis")

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, 14400.0, payload["total_consumption_kwh"])
	assert.Equal(t, "increasing", payload["consumption_trend"])
	assert.Contains(t, payload, "night_idle_issues")
}

func TestWebAPI_GetAnalysis_EmptyDataset(t *testing.T) {
	analysisSvc := &mockAnalysisService{}
	analysisSvc.On("Analyze", mock.Anything, "electricity").Return(nil, analysis.ErrEmptyDataset)

	recorder := doRequest(t, routerFixture(analysisSvc, nil), http.MethodGet, "/api/v1/resources/electricity/analysis")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"error": "No data available"}`, recorder.Body.String())
}

func TestWebAPI_GetAnalysis_SchemaError(t *testing.T) {
	analysisSvc := &mockAnalysisService{}
	analysisSvc.On("Analyze", mock.Anything, "electricity").
		Return(nil, &analysis.SchemaError{Column: "facility"})

	recorder := doRequest(t, routerFixture(analysisSvc, nil), http.MethodGet, "/api/v1/resources/electricity/analysis")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "facility")
}

func TestWebAPI_GetAnalysis_InternalError(t *testing.T) {
	analysisSvc := &mockAnalysisService{}
	analysisSvc.On("Analyze", mock.Anything, "steam").
		Return(nil, fmt.Errorf("unsupported resource type: steam"))

	recorder := doRequest(t, routerFixture(analysisSvc, nil), http.MethodGet, "/api/v1/resources/steam/analysis")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestWebAPI_GetAnomalies(t *testing.T) {
	analysisSvc := &mockAnalysisService{}
	analysisSvc.On("Anomalies", mock.Anything, "electricity").Return([]domain.ConsumptionRecord{
		{Facility: "Library", Value: 500, Hour: 23, IsAnomaly: true, AnomalySeverity: 2.5},
	}, nil)

	recorder := doRequest(t, routerFixture(analysisSvc, nil), http.MethodGet, "/api/v1/resources/electricity/anomalies")

	require.Equal(t, http.StatusOK, recorder.Code)

	var anomalies []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &anomalies))
	require.Len(t, anomalies, 1)
	assert.Equal(t, "Library", anomalies[0]["facility"])
	assert.Equal(t, 500.0, anomalies[0]["consumption"])
	assert.Equal(t, 2.5, anomalies[0]["anomaly_severity"])
}

func TestWebAPI_GenerateInsight(t *testing.T) {
	result := electricityResult()

	analysisSvc := &mockAnalysisService{}
	analysisSvc.On("Analyze", mock.Anything, "electricity").Return(result, nil)

	insightSvc := &mockInsightService{}
	insightSvc.On("AnalysisInsight", mock.Anything, result).
		Return("Investigate night-time base load.", nil)

	recorder := doRequest(t, routerFixture(analysisSvc, insightSvc), http.MethodPost, "/api/v1/resources/electricity/insights")

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "electricity", payload["resource"])
	assert.Equal(t, "Investigate night-time base load.", payload["insight"])
}

func TestWebAPI_GenerateInsight_NotConfigured(t *testing.T) {
	analysisSvc := &mockAnalysisService{}

	recorder := doRequest(t, routerFixture(analysisSvc, nil), http.MethodPost, "/api/v1/resources/electricity/insights")

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "insights are not configured")
}

func TestWebAPI_GenerateInsight_GeneratorFailure(t *testing.T) {
	analysisSvc := &mockAnalysisService{}
	analysisSvc.On("Analyze", mock.Anything, "electricity").Return(electricityResult(), nil)

	insightSvc := &mockInsightService{}
	insightSvc.On("AnalysisInsight", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("model unavailable"))

	recorder := doRequest(t, routerFixture(analysisSvc, insightSvc), http.MethodPost, "/api/v1/resources/electricity/insights")

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}
