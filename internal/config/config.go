// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogDev          bool          `env:"LOG_DEV" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	WSReadTimeout   time.Duration `env:"WS_READ_TIMEOUT" envDefault:"30s"`

	// Optional backends. Empty disables them.
	DatabaseURL string `env:"DATABASE_URL" envDefault:""`
	RedisURL    string `env:"REDIS_URL" envDefault:""`

	RecentKey   string `env:"RECENT_KEY" envDefault:"recent-searches"`
	RecentLimit int    `env:"RECENT_LIMIT" envDefault:"5"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR is empty"))
	}
	if c.RecentLimit <= 0 {
		errs = append(errs, fmt.Errorf("RECENT_LIMIT must be positive, got %d", c.RecentLimit))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.WSReadTimeout <= 0 {
		errs = append(errs, errors.New("WS_READ_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
