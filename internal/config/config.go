// Package config loads server configuration from the environment
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server's runtime configuration
type Config struct {
	Host string `env:"MLIFE_HOST" envDefault:""`
	Port int    `env:"MLIFE_PORT" envDefault:"8080"`

	// StorageType selects the storage backend: memory, redis or sqlite
	StorageType string `env:"MLIFE_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"MLIFE_REDIS_URL" envDefault:"redis://localhost:6379"`
	SQLitePath  string `env:"MLIFE_SQLITE_PATH" envDefault:"mlife.db"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
