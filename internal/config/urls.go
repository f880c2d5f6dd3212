// Package config provides configuration management for the WiFiQ API client.
package config

// ServiceURLs contains backend URLs based on environment. URLs are
// automatically selected from the current environment setting so
// calling code never branches on environment itself.
type ServiceURLs struct {
	// APIBaseURL is the base URL for the ticketing REST API.
	APIBaseURL string
	// StorageBaseURL is the base URL for uploaded-file assets.
	StorageBaseURL string
}

// GetServiceURLs returns environment-appropriate backend URLs. Explicit
// WIFIQ_API_BASE_URL / WIFIQ_API_STORAGE_BASE_URL settings take
// precedence over these defaults (see Load).
func (c *Config) GetServiceURLs() ServiceURLs {
	switch c.Environment.Environment {
	case NonProd:
		return ServiceURLs{
			APIBaseURL:     "https://staging-api.wifiq.id/api",
			StorageBaseURL: "https://staging-api.wifiq.id/storage",
		}
	case Prod:
		return ServiceURLs{
			APIBaseURL:     "https://api.wifiq.id/api",
			StorageBaseURL: "https://api.wifiq.id/storage",
		}
	case Local:
		fallthrough
	default:
		return ServiceURLs{
			APIBaseURL:     "http://localhost:8000/api",
			StorageBaseURL: "http://localhost:8000/storage",
		}
	}
}
