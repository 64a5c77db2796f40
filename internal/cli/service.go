package cli

import (
	"errors"
	"strings"

	"qboard/internal/config"
	"qboard/pkg/board"
	"qboard/pkg/board/httpclient"
)

// resolveConfig loads the effective config: an explicit --config path, a
// discovered .qboard.yml, or the built-in defaults when neither exists.
func resolveConfig(explicit string) (config.Config, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		return config.Load(path)
	}
	path, err := config.FindConfigPath("")
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

// applyServiceOverride replaces the service base URL with a --service value.
func applyServiceOverride(cfg *config.Config, override string) {
	if value := strings.TrimSpace(override); value != "" {
		cfg.Service.BaseURL = strings.TrimRight(value, "/")
	}
}

// newServiceClient builds the question service client for a config.
var newServiceClient = func(cfg config.Config) board.Service {
	return httpclient.NewWithTimeout(cfg.Service.BaseURL, cfg.Service.Timeout())
}
