package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration, loaded from the environment
type Config struct {
	Host            string        `env:"SNAKEDUEL_HOST" envDefault:""`
	Port            int           `env:"SNAKEDUEL_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SNAKEDUEL_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SNAKEDUEL_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SNAKEDUEL_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// StorageType selects the backend: "memory", "sqlite" or "redis"
	StorageType string `env:"SNAKEDUEL_STORAGE" envDefault:"memory"`
	SQLitePath  string `env:"SNAKEDUEL_SQLITE_PATH" envDefault:"snakeduel.db"`
	RedisURL    string `env:"SNAKEDUEL_REDIS_URL" envDefault:"redis://localhost:6379"`

	// StrictPasswords enables real bcrypt verification on login.
	// The default accepts any non-empty password for a known account,
	// matching the demo deployments existing clients were built against.
	StrictPasswords bool `env:"SNAKEDUEL_STRICT_PASSWORDS" envDefault:"false"`

	LogLevel string `env:"SNAKEDUEL_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
