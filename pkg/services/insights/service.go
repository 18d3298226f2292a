package insights

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/rag"
)

// Service turns analysis results into narrative recommendations. With a
// retriever configured, prompts are grounded in retrieved policy context.
type Service struct {
	generator Generator
	retriever *rag.Retriever
	logPath   string
}

type Option func(*Service)

// WithRetriever grounds prompts in retrieved policy documents.
func WithRetriever(retriever *rag.Retriever) Option {
	return func(s *Service) { s.retriever = retriever }
}

// WithInsightsLog appends every generated insight to the given file.
func WithInsightsLog(path string) Option {
	return func(s *Service) { s.logPath = path }
}

func NewService(generator Generator, opts ...Option) *Service {
	s := &Service{generator: generator}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalysisInsight generates a recommendation narrative for one analysis run.
func (s *Service) AnalysisInsight(ctx context.Context, result *domain.AnalysisResult) (string, error) {
	logger := zerolog.Ctx(ctx)

	prompt := FormatAnalysisPrompt(result)
	if s.retriever != nil {
		query := fmt.Sprintf("%s consumption efficiency conservation", result.Resource)
		if policies := s.retriever.Retrieve(query, 3); len(policies) > 0 {
			prompt = FormatPolicyGroundedPrompt(policies, prompt)
		}
	}

	logger.Info().Str("resource", string(result.Resource)).Msg("generating sustainability insight")
	text, err := s.generator.Generate(ctx, SystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	if s.logPath != "" {
		if err := SaveInsight(s.logPath, text); err != nil {
			logger.Error().Err(err).Str("path", s.logPath).Msg("failed to save insight")
		}
	}
	return text, nil
}

// SaveInsight appends generated text to the insights log with a timestamp
// header.
func SaveInsight(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open insights log: %w", err)
	}
	defer f.Close()

	entry := fmt.Sprintf("\n[%s]\n%s\n%s\n",
		time.Now().Format("2006-01-02 15:04:05"), text, separator)
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to append insight: %w", err)
	}
	return nil
}

const separator = "=================================================="
