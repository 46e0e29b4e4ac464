// Package config provides application configuration loaded from environment
// variables, with a .env file honored in development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
}

// DatabaseConfig selects and configures the store. Driver is "sqlite" for
// local development and tests, "postgres" for deployments.
type DatabaseConfig struct {
	Driver  string `env:"DB_DRIVER" envDefault:"sqlite"`
	Path    string `env:"DB_PATH" envDefault:"epicevents.db"`
	Host    string `env:"DB_HOST" envDefault:"localhost"`
	Port    int    `env:"DB_PORT" envDefault:"5432"`
	User    string `env:"DB_USER" envDefault:"epicevents"`
	Pass    string `env:"DB_PASSWORD" envDefault:""`
	Name    string `env:"DB_NAME" envDefault:"epicevents"`
	SSLMode string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN returns the PostgreSQL connection string in key=value format.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Pass, d.Name, d.SSLMode,
	)
}

// AuthConfig holds token settings.
type AuthConfig struct {
	Secret   string        `env:"JWT_SECRET" envDefault:"devsecret"`
	TokenTTL time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Migrations bool   `env:"MIGRATIONS" envDefault:"true"`
	SeedAdmin  string `env:"SEED_ADMIN_EMAIL" envDefault:""`
	SeedPass   string `env:"SEED_ADMIN_PASSWORD" envDefault:""`
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win over file contents.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
