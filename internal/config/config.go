// Package config loads runtime configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is a PostgreSQL DSN. When empty the server runs in
	// mock mode with in-memory repositories.
	DatabaseURL string `env:"DATABASE_URL"`

	// CacheEngine selects the local progress cache backend: "sqlite"
	// or "json".
	CacheEngine string `env:"CACHE_ENGINE" envDefault:"sqlite"`
	CachePath   string `env:"CACHE_PATH" envDefault:"progress-cache.db"`

	JWTSecret    string `env:"JWT_SECRET"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"true"`
	BcryptCost   int    `env:"BCRYPT_COST" envDefault:"12"`

	// AlertRegion is the default region for weather alert lookups.
	AlertRegion string `env:"ALERT_REGION" envDefault:"tamil-nadu"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables take precedence over it.
func Load() (*Config, error) {
	// Ignore the error: a missing .env file is the normal case in
	// production.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	switch c.CacheEngine {
	case "sqlite", "json":
	default:
		return fmt.Errorf("CACHE_ENGINE must be \"sqlite\" or \"json\", got %q", c.CacheEngine)
	}
	return nil
}
