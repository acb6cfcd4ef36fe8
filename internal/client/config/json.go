package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/localaddons/addons/internal/flagx"
	"github.com/localaddons/addons/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "12s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	RegistrationURL string         `json:"registration_url"`
	DatabasePath    string         `json:"database_path"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// from the -c/-config flags. Empty fields leave the current value in place.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RegistrationURL != "" {
		cfg.RegistrationURL = jc.RegistrationURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
