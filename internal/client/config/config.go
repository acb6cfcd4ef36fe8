package config

import "time"

// Config holds runtime settings for the LocalAddons CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API (".../api").
//   - RegistrationURL: root of the workshop registration service.
//   - DatabasePath: path of the local SQLite state database.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	APIBaseURL      string
	RegistrationURL string
	DatabasePath    string
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.RegistrationURL = "http://127.0.0.1:8081"
	c.DatabasePath = "addons.db"
	c.RequestTimeout = 12 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
