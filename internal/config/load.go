package config

import (
	"fmt"
	"os"
	"strings"
)

// Defaults applied by Normalize and Default.
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultTimeoutSeconds = 10
)

// ServiceURLEnv overrides service.base_url when set to a non-blank value.
const ServiceURLEnv = "QBOARD_SERVICE_URL"

// Load reads, parses, normalizes, and validates a config file. The
// ServiceURLEnv override is applied after validation so the rest of the
// program never reads the environment itself.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	applyEnvOverride(&cfg)
	return cfg, nil
}

// Default returns the built-in config used when no file is present,
// with the ServiceURLEnv override applied.
func Default() Config {
	cfg := Config{
		Version: 1,
		Service: ServiceConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
	applyEnvOverride(&cfg)
	return cfg
}

func applyEnvOverride(cfg *Config) {
	if value := strings.TrimSpace(os.Getenv(ServiceURLEnv)); value != "" {
		cfg.Service.BaseURL = strings.TrimRight(value, "/")
	}
}
