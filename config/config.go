package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cycles/bot"
)

// Config carries process-level settings. Values from a config file override
// the defaults; command-line flags override both.
type Config struct {
	Name          string `yaml:"name"`
	Server        string `yaml:"server"`
	LogLevel      string `yaml:"log_level"`
	TrailCapacity int    `yaml:"trail_capacity"`
	Sim           Sim    `yaml:"sim"`
}

// Sim configures offline arena runs.
type Sim struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Games  int    `yaml:"games"`
	Seed   uint64 `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Name:          "cycles-bot",
		Server:        "localhost:9999",
		LogLevel:      "info",
		TrailCapacity: bot.DefaultTrailCapacity,
		Sim: Sim{
			Width:  64,
			Height: 64,
			Games:  10,
			Seed:   1,
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.TrailCapacity <= 0 {
		return cfg, fmt.Errorf("trail_capacity must be positive, got %d", cfg.TrailCapacity)
	}
	return cfg, nil
}
