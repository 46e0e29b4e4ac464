package main

import (
	"log"
	"net/http"

	"github.com/ClemRoy/epicEvents/internal/config"
	"github.com/ClemRoy/epicEvents/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.App.Migrations {
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed")
	}

	if err := db.Seed(conn); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	if cfg.App.SeedAdmin != "" && cfg.App.SeedPass != "" {
		if err := db.SeedAdmin(conn, cfg.App.SeedAdmin, cfg.App.SeedPass); err != nil {
			log.Fatalf("Admin seeding failed: %v", err)
		}
	}

	app := NewApp(conn, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
