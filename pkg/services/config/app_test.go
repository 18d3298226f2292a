package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAppConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecosense.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppConfig(t *testing.T) {
	path := writeAppConfig(t, `
server:
  host: 0.0.0.0
  port: "9090"
data_dir: /var/lib/ecosense
profiles_path: /etc/ecosense/profiles.ini
watsonx:
  api_key: file-key
  project_id: file-project
  model_id: meta-llama/llama-3-70b-instruct
`)

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/var/lib/ecosense", cfg.DataDir)
	assert.Equal(t, "/etc/ecosense/profiles.ini", cfg.ProfilesPath)
	assert.Equal(t, "file-key", cfg.Watsonx.APIKey)
	assert.Equal(t, "meta-llama/llama-3-70b-instruct", cfg.Watsonx.ModelID)
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	cfg, err := LoadAppConfig(writeAppConfig(t, "data_dir: data\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "outputs", cfg.OutputDir)
	assert.Equal(t, "profiles.ini", cfg.ProfilesPath)
	assert.Equal(t, "https://us-south.ml.cloud.ibm.com", cfg.Watsonx.URL)
	assert.Equal(t, "ibm/granite-13b-instruct-v2", cfg.Watsonx.ModelID)
	assert.Equal(t, 500, cfg.Watsonx.MaxTokens)
	assert.Equal(t, 0.7, cfg.Watsonx.Temperature)
}

func TestLoadAppConfig_CredentialsFromEnvironment(t *testing.T) {
	t.Setenv("IBM_WATSONX_API_KEY", "env-key")
	t.Setenv("IBM_PROJECT_ID", "env-project")

	cfg, err := LoadAppConfig(writeAppConfig(t, "data_dir: data\n"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Watsonx.APIKey)
	assert.Equal(t, "env-project", cfg.Watsonx.ProjectID)
}

func TestLoadAppConfig_FileValuesBeatEnvironment(t *testing.T) {
	t.Setenv("IBM_WATSONX_API_KEY", "env-key")

	cfg, err := LoadAppConfig(writeAppConfig(t, `
watsonx:
  api_key: file-key
`))
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Watsonx.APIKey)
}

func TestLoadAppConfig_MissingFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
