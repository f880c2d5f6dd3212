// Package config provides configuration management for the WiFiQ API client.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// applyYAMLConfig overlays values from an optional config.yaml located
// in the working directory or ~/.wifiq. Environment variables take
// precedence: YAML only fills fields the environment left empty, so a
// missing file is not an error.
func applyYAMLConfig(cfg *Config) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".wifiq"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = v.GetString("api.base_url")
	}
	if cfg.API.StorageBaseURL == "" {
		cfg.API.StorageBaseURL = v.GetString("api.storage_base_url")
	}
	if cfg.Credentials.Dir == "" {
		cfg.Credentials.Dir = v.GetString("credentials.dir")
	}

	// Fields with envconfig defaults cannot be distinguished from
	// explicitly set ones by value alone, so check the variable itself.
	if os.Getenv(envPrefix+"_API_TIMEOUT") == "" && v.IsSet("api.timeout") {
		if d := v.GetDuration("api.timeout"); d > 0 {
			cfg.API.Timeout = d
		}
	}
	if os.Getenv(envPrefix+"_LOGGING_LEVEL") == "" && v.IsSet("logging.level") {
		cfg.Logging.Level = v.GetString("logging.level")
	}
	if os.Getenv(envPrefix+"_LOGGING_FORMAT") == "" && v.IsSet("logging.format") {
		cfg.Logging.Format = v.GetString("logging.format")
	}
	if os.Getenv(envPrefix+"_ENVIRONMENT_ENV") == "" && v.IsSet("environment") {
		cfg.Environment.Environment = Environment(v.GetString("environment"))
	}

	return nil
}
