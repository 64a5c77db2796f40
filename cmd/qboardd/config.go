package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigPath is used when no --config flag is given; the file is
// optional in that case.
const defaultConfigPath = "qboardd.yml"

// config describes the qboardd YAML configuration.
type config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Seed struct {
		Path string `yaml:"path"`
	} `yaml:"seed"`
	Log struct {
		Debug bool `yaml:"debug"`
	} `yaml:"log"`
}

// loadConfig reads the configuration file and applies defaults. A missing
// file is only an error when the path was given explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg.Server.ListenAddr = ":8080"
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	return cfg, nil
}
