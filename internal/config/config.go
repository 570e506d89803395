// Package config loads partymeta CLI settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the CLI configuration. Flags override these values.
type Config struct {
	LogLevel    string `env:"PARTYMETA_LOG_LEVEL" envDefault:"info"`
	LogPretty   bool   `env:"PARTYMETA_LOG_PRETTY" envDefault:"false"`
	MetricsAddr string `env:"PARTYMETA_METRICS_ADDR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
