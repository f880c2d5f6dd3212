package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafiaprilian/wifiq-client/internal/config"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		wantErr  bool
		validate func(*testing.T, *config.Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
				assert.Equal(t, "http://localhost:8000/storage", cfg.API.StorageBaseURL)
				assert.Equal(t, 30*time.Second, cfg.API.Timeout)
				assert.NotEmpty(t, cfg.Credentials.Dir)
			},
		},
		{
			name: "explicit_urls_override_environment_defaults",
			envVars: map[string]string{
				"WIFIQ_ENVIRONMENT_ENV":      "PROD",
				"WIFIQ_API_BASE_URL":         "https://override.example.com/api",
				"WIFIQ_API_STORAGE_BASE_URL": "https://override.example.com/storage",
			},
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "https://override.example.com/api", cfg.API.BaseURL)
				assert.Equal(t, "https://override.example.com/storage", cfg.API.StorageBaseURL)
			},
		},
		{
			name: "prod_environment_urls",
			envVars: map[string]string{
				"WIFIQ_ENVIRONMENT_ENV": "PROD",
			},
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "https://api.wifiq.id/api", cfg.API.BaseURL)
				assert.Equal(t, "https://api.wifiq.id/storage", cfg.API.StorageBaseURL)
			},
		},
		{
			name: "invalid_base_url",
			envVars: map[string]string{
				"WIFIQ_API_BASE_URL": "not a url",
			},
			wantErr: true,
		},
		{
			name: "invalid_timeout",
			envVars: map[string]string{
				"WIFIQ_API_TIMEOUT": "-5s",
			},
			wantErr: true,
		},
		{
			name: "unknown_environment",
			envVars: map[string]string{
				"WIFIQ_ENVIRONMENT_ENV": "STAGING",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := config.Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("api:\n  base_url: https://yaml.example.com/api\n  timeout: 5s\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(dir+"/config.yaml", yaml, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() {
		require.NoError(t, os.Chdir(wd))
	}()

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://yaml.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvWinsOverYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("api:\n  base_url: https://yaml.example.com/api\n  timeout: 5s\n")
	require.NoError(t, os.WriteFile(dir+"/config.yaml", yaml, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() {
		require.NoError(t, os.Chdir(wd))
	}()

	t.Setenv("WIFIQ_API_BASE_URL", "https://env.example.com/api")
	t.Setenv("WIFIQ_API_TIMEOUT", "7s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.API.Timeout)
}

func TestConfig_TokenPath(t *testing.T) {
	t.Setenv("WIFIQ_CREDENTIALS_DIR", "/tmp/wifiq-test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/wifiq-test/token", cfg.TokenPath())
}
