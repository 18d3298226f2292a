package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tonyloki/-EcoSense-AI/pkg/runtime/terminal/export"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
)

type AnalyzeCmd struct {
	profilesPath string
	resource     string
	reporter     *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze resource consumption",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.profilesPath, "profiles", "profiles.ini", "Path to the resource profiles file")
	cmd.Flags().StringVar(&ac.resource, "resource", "", "Resource type to analyze (e.g. electricity)")

	_ = cmd.MarkFlagRequired("resource")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	ctrl, err := BuildController(ac.profilesPath)
	if err != nil {
		return err
	}

	result, err := ctrl.Analyze(ctx, ac.resource)
	if errors.Is(err, analysis.ErrEmptyDataset) {
		return ac.reporter.HandleError("No data available")
	}
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", ac.resource, err)
	}

	return ac.reporter.Handle(result)
}
