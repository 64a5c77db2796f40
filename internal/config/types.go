package config

import "time"

// Config is the parsed .qboard.yml schema.
type Config struct {
	Version int           `yaml:"version"`
	Service ServiceConfig `yaml:"service"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// ServiceConfig points the client at a question service.
type ServiceConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Path  string `yaml:"path"`
	Debug bool   `yaml:"debug"`
}

// Timeout returns the request timeout as a duration.
func (s ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}
