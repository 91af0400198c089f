// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultTimeoutSeconds is the HTTP timeout applied when none is configured.
const DefaultTimeoutSeconds = 30

// Config represents the search configuration. Values can come from a JSON
// config file, environment variables or CLI flags; the search command merges
// them before Validate is called. Once validated the value is never mutated.
type Config struct {
	// Required search inputs
	APIKey   string `json:"api_key,omitempty" validate:"required"`   // Companies House API key (raw, unencoded)
	Location string `json:"location,omitempty" validate:"required"`  // Location filter for the search
	SICCodes string `json:"sic_codes,omitempty" validate:"required"` // Comma-separated SIC codes

	// Behavior
	BaseURL        string `json:"base_url,omitempty"`                         // API base URL override (tests, proxies)
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0"` // HTTP timeout in seconds
	DatabaseURL    string `json:"database_url,omitempty"`                     // PostgreSQL connection URL (optional persistence)
	Verbose        bool   `json:"verbose,omitempty"`                          // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// jsonNames maps struct field names to their config file keys for error messages.
var jsonNames = map[string]string{
	"APIKey":         "api_key",
	"Location":       "location",
	"SICCodes":       "sic_codes",
	"TimeoutSeconds": "timeout_seconds",
}

// Validate checks that all required settings are present and well formed.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0].Field()
			if name, ok := jsonNames[field]; ok {
				field = name
			}
			if verrs[0].Tag() == "required" {
				return fmt.Errorf("config error: '%s' is required", field)
			}
			return fmt.Errorf("config error: '%s' has an invalid value", field)
		}
		return err
	}

	if len(SplitSICCodes(c.SICCodes)) == 0 {
		return fmt.Errorf("config error: 'sic_codes' contains no usable codes")
	}

	return nil
}

// SplitSICCodes splits a comma-separated SIC code list, trimming whitespace
// around each code and dropping empty elements.
func SplitSICCodes(raw string) []string {
	var codes []string
	for _, code := range strings.Split(raw, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.TimeoutSeconds == 0 {
		if defaults.TimeoutSeconds > 0 {
			result.TimeoutSeconds = defaults.TimeoutSeconds
		} else {
			result.TimeoutSeconds = DefaultTimeoutSeconds
		}
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	return result
}
