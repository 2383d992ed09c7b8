// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings. Flags in main may override Addr and Dev.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"BACKBEAT_ADDR" envDefault:":8080"`
	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `env:"BACKBEAT_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// Dev switches the logger to development output.
	Dev bool `env:"BACKBEAT_DEV" envDefault:"false"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
