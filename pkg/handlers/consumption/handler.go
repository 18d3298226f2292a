package consumption

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/tonyloki/-EcoSense-AI/pkg/adapters"
	"github.com/tonyloki/-EcoSense-AI/pkg/models/api"
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
)

// AnalysisService runs consumption analysis for the registered resources.
type AnalysisService interface {
	SupportedResources() []string
	Analyze(ctx context.Context, resource string) (*domain.AnalysisResult, error)
	Anomalies(ctx context.Context, resource string) ([]domain.ConsumptionRecord, error)
}

// InsightService generates narrative recommendations for a finished analysis.
type InsightService interface {
	AnalysisInsight(ctx context.Context, result *domain.AnalysisResult) (string, error)
}

type Handler struct {
	analysis AnalysisService
	insights InsightService
}

// NewHandler creates a handler. insights may be nil when no model credentials
// are configured; the insights endpoint then reports unavailability.
func NewHandler(analysisSvc AnalysisService, insights InsightService) *Handler {
	return &Handler{
		analysis: analysisSvc,
		insights: insights,
	}
}

func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	response := make([]api.Resource, 0)
	for _, name := range h.analysis.SupportedResources() {
		response = append(response, api.Resource{
			Name: name,
			Unit: domain.ResourceType(name).Unit(),
		})
	}
	h.encode(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resource := chi.URLParam(r, "resource")

	result, err := h.analysis.Analyze(ctx, resource)
	if err != nil {
		h.renderError(ctx, w, resource, err)
		return
	}

	h.encode(ctx, w, http.StatusOK, adapters.MapAnalysisResultToAPI(result))
}

func (h *Handler) GetAnomalies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resource := chi.URLParam(r, "resource")

	records, err := h.analysis.Anomalies(ctx, resource)
	if err != nil {
		h.renderError(ctx, w, resource, err)
		return
	}

	h.encode(ctx, w, http.StatusOK, adapters.MapAnomalyRecordsToAPI(records))
}

func (h *Handler) GenerateInsight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resource := chi.URLParam(r, "resource")

	if h.insights == nil {
		h.encode(ctx, w, http.StatusServiceUnavailable,
			api.AnalysisError{Error: "insights are not configured"})
		return
	}

	result, err := h.analysis.Analyze(ctx, resource)
	if err != nil {
		h.renderError(ctx, w, resource, err)
		return
	}

	insight, err := h.insights.AnalysisInsight(ctx, result)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("resource", resource).Msg("insight generation failed")
		h.encode(ctx, w, http.StatusBadGateway, api.AnalysisError{Error: "insight generation failed"})
		return
	}

	h.encode(ctx, w, http.StatusOK, api.InsightResponse{Resource: resource, Insight: insight})
}

// renderError keeps the uniform {"error": reason} contract: an empty dataset
// is a renderable result, not a server failure.
func (h *Handler) renderError(ctx context.Context, w http.ResponseWriter, resource string, err error) {
	logger := zerolog.Ctx(ctx)

	var schemaErr *analysis.SchemaError
	switch {
	case errors.Is(err, analysis.ErrEmptyDataset):
		h.encode(ctx, w, http.StatusOK, api.AnalysisError{Error: "No data available"})
	case errors.As(err, &schemaErr):
		h.encode(ctx, w, http.StatusBadRequest, api.AnalysisError{Error: schemaErr.Error()})
	default:
		logger.Error().Err(err).Str("resource", resource).Msg("analysis failed")
		h.encode(ctx, w, http.StatusInternalServerError, api.AnalysisError{Error: err.Error()})
	}
}

func (h *Handler) encode(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
