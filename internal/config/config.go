// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

// Config holds settings shared by every command. Flags override these.
type Config struct {
	DBPath    string `env:"RUBIKS_DB_PATH"`
	StatePath string `env:"RUBIKS_STATE_PATH"`
	LogLevel  string `env:"RUBIKS_LOG_LEVEL" envDefault:"info"`

	// Seed makes shuffles reproducible. Zero means seed from the clock.
	Seed uint64 `env:"RUBIKS_SEED" envDefault:"0"`
}

// Load parses the environment and fills in default paths.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" || cfg.StatePath == "" {
		dir, err := storage.DefaultDir()
		if err != nil {
			return Config{}, err
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(dir, "rubiks.db")
		}
		if cfg.StatePath == "" {
			cfg.StatePath = filepath.Join(dir, "state.json")
		}
	}

	return cfg, nil
}

// SeedPtr returns the configured seed, or nil when shuffles should be
// seeded from the clock.
func (c Config) SeedPtr() *uint64 {
	if c.Seed == 0 {
		return nil
	}
	seed := c.Seed
	return &seed
}
