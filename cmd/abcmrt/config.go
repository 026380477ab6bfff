package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the tool settings. Every field can be overridden by a
// flag; the YAML file only provides defaults.
type config struct {
	Templates string `yaml:"templates"` // reference WAV directory
	Workers   int    `yaml:"workers"`   // parallel clips, 0 = GOMAXPROCS
	MaxLag    int    `yaml:"max_lag"`   // alignment window in frames, 0 = default
	Verbose   bool   `yaml:"verbose"`
}

// loadConfig reads a YAML config file. A missing path returns the zero
// config without error.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("config %s: workers must be >= 0", path)
	}
	if cfg.MaxLag < 0 {
		return cfg, fmt.Errorf("config %s: max_lag must be >= 0", path)
	}
	return cfg, nil
}
