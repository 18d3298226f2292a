package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type WatsonxConfig struct {
	URL         string  `mapstructure:"url"`
	APIKey      string  `mapstructure:"api_key"`
	ProjectID   string  `mapstructure:"project_id"`
	ModelID     string  `mapstructure:"model_id"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type AppConfig struct {
	Server       ServerConfig  `mapstructure:"server"`
	DataDir      string        `mapstructure:"data_dir"`
	OutputDir    string        `mapstructure:"output_dir"`
	ProfilesPath string        `mapstructure:"profiles_path"`
	PolicyDoc    string        `mapstructure:"policy_doc"`
	Watsonx      WatsonxConfig `mapstructure:"watsonx"`
}

// LoadAppConfig reads the application config file. Watsonx credentials fall
// back to the IBM_WATSONX_API_KEY and IBM_PROJECT_ID environment variables so
// secrets can stay in the environment or a .env file.
func LoadAppConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("output_dir", "outputs")
	v.SetDefault("profiles_path", "profiles.ini")
	v.SetDefault("watsonx.url", "https://us-south.ml.cloud.ibm.com")
	v.SetDefault("watsonx.model_id", "ibm/granite-13b-instruct-v2")
	v.SetDefault("watsonx.max_tokens", 500)
	v.SetDefault("watsonx.temperature", 0.7)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Watsonx.APIKey == "" {
		cfg.Watsonx.APIKey = os.Getenv("IBM_WATSONX_API_KEY")
	}
	if cfg.Watsonx.ProjectID == "" {
		cfg.Watsonx.ProjectID = os.Getenv("IBM_PROJECT_ID")
	}

	return &cfg, nil
}
