// Package config maps process environment into the settings the persistence
// layer needs, and owns the database handle built from them.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads a .env file into the process environment before Load reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds everything this layer takes from the environment. The store
// connection string is the only required value.
type Config struct {
	Env         string `koanf:"env"`
	LogLevel    string `koanf:"log_level"`
	DatabaseURL string `koanf:"database_url" validate:"required"`
}

// Load reads FEED_-prefixed environment variables into a validated Config.
// FEED_DATABASE_URL -> DatabaseURL, FEED_LOG_LEVEL -> LogLevel, and so on.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("FEED_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FEED_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{
		Env:      "development",
		LogLevel: "info",
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
