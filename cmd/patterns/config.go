package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// allPatterns selects every registered demo.
const allPatterns = "all"

type Config struct {
	Pattern        string `env:"PATTERNS_PATTERN" envDefault:"all"`
	Seed           uint64 `env:"PATTERNS_SEED" envDefault:"0"`
	CharacterName  string `env:"PATTERNS_CHARACTER_NAME" envDefault:"Gentleman"`
	CharacterClass string `env:"PATTERNS_CHARACTER_CLASS" envDefault:"warrior"`
}

// LoadFromEnv reads Config from the environment, applying defaults.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
