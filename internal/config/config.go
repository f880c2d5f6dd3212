// Package config provides configuration management for the WiFiQ API
// client. It supports environment variable-based configuration with
// validation and default values for the API endpoints, credential
// storage, and logging.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces all environment variables (WIFIQ_API_BASE_URL etc.).
const envPrefix = "WIFIQ"

// CookieName is the credential name shared with the web frontend; the
// token file under the credential directory uses the same name.
const CookieName = "token"

// Config aggregates all client configuration.
type Config struct {
	// Environment holds environment-specific settings.
	Environment EnvironmentConfig `envconfig:"ENVIRONMENT"`
	// API contains backend endpoint configuration.
	API APIConfig `envconfig:"API"`
	// Credentials contains bearer token storage configuration.
	Credentials CredentialConfig `envconfig:"CREDENTIALS"`
	// Logging contains logging configuration.
	Logging LoggingConfig `envconfig:"LOGGING"`
}

type Environment string

const (
	Local   Environment = "LOCAL"
	NonProd Environment = "NONPROD"
	Prod    Environment = "PROD"
)

// EnvironmentConfig holds environment-specific settings.
type EnvironmentConfig struct {
	// Environment indicates the current running environment (LOCAL, NONPROD, PROD).
	Environment Environment `envconfig:"ENV" default:"LOCAL"`
}

// APIConfig holds backend endpoint configuration.
type APIConfig struct {
	// BaseURL is the ticketing API base URL. When empty, an
	// environment-appropriate default is applied (see urls.go).
	BaseURL string `envconfig:"BASE_URL"`
	// StorageBaseURL is the base URL for uploaded-file assets. When
	// empty, an environment-appropriate default is applied.
	StorageBaseURL string `envconfig:"STORAGE_BASE_URL"`
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// CredentialConfig holds bearer token storage configuration.
type CredentialConfig struct {
	// Dir is the directory holding the token file. Defaults to
	// ~/.wifiq when unset.
	Dir string `envconfig:"DIR"`
}

// LoggingConfig contains logging configuration including
// log level, format, and output destination.
type LoggingConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string `envconfig:"LEVEL"  default:"info"`
	// Format is the log output format (json, text).
	Format string `envconfig:"FORMAT" default:"text"`
	// Output is the log output destination (stdout, stderr, file path).
	Output string `envconfig:"OUTPUT" default:"stderr"`
}

// Load reads configuration from environment variables, overlays any
// optional YAML configuration, and returns a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyYAMLConfig(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills URL and path fields left empty by the
// environment and YAML layers.
func (c *Config) applyDefaults() {
	urls := c.GetServiceURLs()
	if c.API.BaseURL == "" {
		c.API.BaseURL = urls.APIBaseURL
	}
	if c.API.StorageBaseURL == "" {
		c.API.StorageBaseURL = urls.StorageBaseURL
	}
	if c.Credentials.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.Credentials.Dir = filepath.Join(home, ".wifiq")
	}
}

// TokenPath returns the full path of the bearer token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Credentials.Dir, CookieName)
}

// Validate checks that the configuration is usable before any request
// is attempted.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API base URL is required")
	}
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("API base URL is invalid: %w", err)
	}

	if c.API.StorageBaseURL != "" {
		if _, err := url.ParseRequestURI(c.API.StorageBaseURL); err != nil {
			return fmt.Errorf("storage base URL is invalid: %w", err)
		}
	}

	if c.API.Timeout <= 0 {
		return errors.New("API timeout must be positive")
	}

	switch c.Environment.Environment {
	case Local, NonProd, Prod:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment.Environment)
	}

	return nil
}
