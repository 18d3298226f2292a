package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tonyloki/-EcoSense-AI/pkg/handlers/consumption"
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"github.com/tonyloki/-EcoSense-AI/pkg/server"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/config"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/insights"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/rag"
	csvstore "github.com/tonyloki/-EcoSense-AI/pkg/store/csv"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the EcoSense AI web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "ecosense.yaml",
		"Path to the application config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadAppConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	controller, err := buildController(cfg.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to build analysis controller: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	for _, resource := range controller.SupportedResources() {
		logger.Info().Msgf("Resource profile: `%s`", resource)
	}

	insightSvc := buildInsights(cfg, logger)

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Dependencies: server.Dependencies{
			Analysis: controller,
			Insights: insightSvc,
			Logger:   logger,
		},
	})

	return api.Start()
}

func buildController(profilesPath string) (*analysis.Controller, error) {
	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return nil, err
	}
	profiles, err := registry.GetProfiles()
	if err != nil {
		return nil, err
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
			return nil, fmt.Errorf("unknown resource type %q", profile.Resource)
		}

		if err := engines.Register(string(profile.Resource), factory); err != nil {
			return nil, err
		}
		stores[string(profile.Resource)] = csvstore.NewStore(profile.CSVPath, profile.Resource)
	}

	return analysis.NewController(engines, stores)
}

// buildInsights returns nil when no credentials are configured; the insights
// endpoint then reports unavailability instead of failing startup.
func buildInsights(cfg *config.AppConfig, logger zerolog.Logger) consumption.InsightService {
	generator, err := insights.NewClient(insights.ClientSettings{
		BaseURL:     cfg.Watsonx.URL,
		APIKey:      cfg.Watsonx.APIKey,
		ProjectID:   cfg.Watsonx.ProjectID,
		ModelID:     cfg.Watsonx.ModelID,
		MaxTokens:   cfg.Watsonx.MaxTokens,
		Temperature: cfg.Watsonx.Temperature,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("insights disabled")
		return nil
	}

	opts := []insights.Option{}
	if cfg.PolicyDoc != "" {
		retriever, err := rag.NewRetriever(cfg.PolicyDoc)
		if err != nil {
			logger.Warn().Err(err).Msg("policy retrieval disabled")
		} else {
			opts = append(opts, insights.WithRetriever(retriever))
		}
	}
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err == nil {
			opts = append(opts, insights.WithInsightsLog(cfg.OutputDir+"/insights_log.txt"))
		}
	}

	return insights.NewService(generator, opts...)
}
