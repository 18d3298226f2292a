package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tonyloki/-EcoSense-AI/pkg/runtime/terminal/export"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/insights"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/rag"
)

type InsightCmd struct {
	profilesPath string
	resource     string
	policyDoc    string
	reporter     *export.Reporter
}

// NewInsightCmd generates a model-written recommendation narrative for one
// resource. Watsonx credentials come from the environment.
func NewInsightCmd(reporter *export.Reporter) *cobra.Command {
	ic := &InsightCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Generate sustainability recommendations for a resource",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.profilesPath, "profiles", "profiles.ini", "Path to the resource profiles file")
	cmd.Flags().StringVar(&ic.resource, "resource", "", "Resource type to analyze")
	cmd.Flags().StringVar(&ic.policyDoc, "policy-doc", "", "Optional policy document grounding the recommendations")

	_ = cmd.MarkFlagRequired("resource")

	return cmd
}

func (ic *InsightCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	ctrl, err := BuildController(ic.profilesPath)
	if err != nil {
		return err
	}

	generator, err := insights.NewClient(insights.ClientSettings{
		APIKey:    os.Getenv("IBM_WATSONX_API_KEY"),
		ProjectID: os.Getenv("IBM_PROJECT_ID"),
		BaseURL:   os.Getenv("WATSONX_URL"),
		ModelID:   os.Getenv("MODEL_ID"),
	})
	if err != nil {
		return err
	}

	var opts []insights.Option
	if ic.policyDoc != "" {
		retriever, err := rag.NewRetriever(ic.policyDoc)
		if err != nil {
			return err
		}
		opts = append(opts, insights.WithRetriever(retriever))
	}
	service := insights.NewService(generator, opts...)

	result, err := ctrl.Analyze(ctx, ic.resource)
	if errors.Is(err, analysis.ErrEmptyDataset) {
		return ic.reporter.HandleError("No data available")
	}
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", ic.resource, err)
	}

	insight, err := service.AnalysisInsight(ctx, result)
	if err != nil {
		return err
	}
	return ic.reporter.HandleText(insight)
}
