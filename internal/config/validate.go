package config

import (
	"fmt"
	"net/url"
)

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if parsed, err := url.Parse(cfg.Service.BaseURL); err != nil {
		collector.add("service.base_url", fmt.Sprintf("invalid URL %q", cfg.Service.BaseURL))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		collector.add("service.base_url", fmt.Sprintf("must be an http or https URL, got %q", cfg.Service.BaseURL))
	} else if parsed.Host == "" {
		collector.add("service.base_url", fmt.Sprintf("missing host in %q", cfg.Service.BaseURL))
	}

	if cfg.Service.TimeoutSeconds < 0 {
		collector.add("service.timeout_seconds", "must be >= 0")
	}

	return collector.result()
}
