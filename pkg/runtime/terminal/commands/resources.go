package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonyloki/-EcoSense-AI/pkg/runtime/terminal/export"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/config"
)

type ResourcesCmd struct {
	profilesPath string
	reporter     *export.Reporter
}

func NewResourcesCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ResourcesCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List the configured resource profiles",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profilesPath, "profiles", "profiles.ini", "Path to the resource profiles file")

	return cmd
}

func (rc *ResourcesCmd) run(_ *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(rc.profilesPath)
	if err != nil {
		return err
	}

	profiles, err := registry.GetProfiles()
	if err != nil {
		return err
	}

	for _, profile := range profiles {
		line := fmt.Sprintf("%-12s  percentile=%.0f  %s", profile.Resource, profile.Percentile, profile.CSVPath)
		if err := rc.reporter.HandleText(line); err != nil {
			return err
		}
	}
	return nil
}
