package commands

import (
	"fmt"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/config"
	csvstore "github.com/tonyloki/-EcoSense-AI/pkg/store/csv"
)

// BuildController wires a controller from a profiles file: one engine and one
// CSV store per configured resource.
func BuildController(profilesPath string) (*analysis.Controller, error) {
	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return nil, err
	}

	profiles, err := registry.GetProfiles()
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no resource profiles found in %s", profilesPath)
	}

	engines := analysis.NewRegistry()
	stores := make(map[string]analysis.RecordStore, len(profiles))

	for _, profile := range profiles {
		settings := analysis.Settings{
			AnomalyPercentile: profile.Percentile,
			NightHours:        profile.NightHours,
		}

		var factory analysis.EngineFactory
		switch profile.Resource {
		case domain.ResourceElectricity:
			factory = func() (*analysis.Engine, error) { return analysis.NewElectricityEngine(settings) }
		case domain.ResourceWater:
			factory = func() (*analysis.Engine, error) { return analysis.NewWaterEngine(settings) }
		default:
			return nil, fmt.Errorf("unknown resource type %q in %s", profile.Resource, profilesPath)
		}

		if err := engines.Register(string(profile.Resource), factory); err != nil {
			return nil, err
		}
		stores[string(profile.Resource)] = csvstore.NewStore(profile.CSVPath, profile.Resource)
	}

	return analysis.NewController(engines, stores)
}
