package config

import "strings"

// Normalize trims fields and fills in defaults for omitted values.
func Normalize(cfg *Config) {
	cfg.Service.BaseURL = strings.TrimSpace(cfg.Service.BaseURL)
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = DefaultBaseURL
	}
	if cfg.Service.TimeoutSeconds == 0 {
		cfg.Service.TimeoutSeconds = DefaultTimeoutSeconds
	}
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
}
