// Package db wires the gorm store: connection, schema migration and seed
// data.
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/config"
)

// Open connects to the configured database.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		// Foreign keys are off by default in sqlite; the cascade rules on
		// client and contract deletion depend on them.
		return gorm.Open(sqlite.Open(cfg.Path+"?_foreign_keys=on"), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	default:
		return nil, fmt.Errorf("db: unknown driver %q", cfg.Driver)
	}
}
