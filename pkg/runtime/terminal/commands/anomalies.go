package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"github.com/tonyloki/-EcoSense-AI/pkg/runtime/terminal/export"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
)

type AnomaliesCmd struct {
	profilesPath string
	resource     string
	limit        int
	reporter     *export.Reporter
}

func NewAnomaliesCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnomaliesCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "List anomalous readings, highest consumption first",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.profilesPath, "profiles", "profiles.ini", "Path to the resource profiles file")
	cmd.Flags().StringVar(&ac.resource, "resource", "", "Resource type to inspect")
	cmd.Flags().IntVar(&ac.limit, "limit", 10, "Maximum number of records to show (0 for all)")

	_ = cmd.MarkFlagRequired("resource")

	return cmd
}

func (ac *AnomaliesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	ctrl, err := BuildController(ac.profilesPath)
	if err != nil {
		return err
	}

	records, err := ctrl.Anomalies(ctx, ac.resource)
	if errors.Is(err, analysis.ErrEmptyDataset) {
		return ac.reporter.HandleError("No data available")
	}
	if err != nil {
		return fmt.Errorf("failed to collect anomalies for %s: %w", ac.resource, err)
	}

	return ac.reporter.HandleAnomalies(domain.ResourceType(ac.resource), records, ac.limit)
}
