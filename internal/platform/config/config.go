// Package config loads the process configuration from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DB holds the database connection settings. Driver selects between the
// postgres production store and a local sqlite file.
type DB struct {
	// Driver is "postgres" or "sqlite".
	Driver string `env:"DRIVER" envDefault:"postgres"`

	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"anime_calendar"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`

	// SQLitePath is the database file used when Driver is "sqlite".
	SQLitePath string `env:"SQLITE_PATH" envDefault:"anime_calendar.db"`

	// RunMigrations runs GORM AutoMigrate for all entities at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS"`
}

// Config is the top-level configuration of the server process.
type Config struct {
	// ServerAddr is the listen address of the HTTP server.
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// JWTSecret signs and verifies session tokens. Must be set in
	// production.
	JWTSecret string `env:"JWT_SECRET"`

	// JWTTTL is how long an issued token stays valid.
	JWTTTL time.Duration `env:"JWT_TTL" envDefault:"24h"`

	DB DB `envPrefix:"DB_"`
}

// Load parses the configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}
