package logger

import (
	"go.uber.org/zap"

	"qboard/internal/config"
)

// New returns a logger for processes that own their terminal: JSON in
// production form, console form when debug is set.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewFile returns a logger writing JSON entries to path. Interactive
// commands use this because the terminal belongs to the form.
func NewFile(path string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// ForConfig returns the logger selected by the log config: a no-op logger
// when no path is set, otherwise a file logger.
func ForConfig(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	return NewFile(cfg.Path, cfg.Debug)
}
