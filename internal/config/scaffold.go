package config

import (
	"fmt"
	"os"
)

// Scaffold writes a starter config file, refusing to overwrite existing files.
func Scaffold(path, baseURL, logPath string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	rendered, err := renderScaffoldConfig(baseURL, logPath)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
