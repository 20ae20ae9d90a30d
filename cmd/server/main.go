// Package main implements the entry point for the clined-api server, the
// clinical education content gateway: prompt composition, provider calls,
// best-effort persistence, and the read-only reference catalogs.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/pharmed/clined-api/internal/config"
	"github.com/pharmed/clined-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) instead of serving")
	flag.Parse()

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		return
	}

	app, err := newApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadAppConfig loads configuration from the environment and optional config
// file, logging a redaction-safe summary.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Dependency configuration",
		"database_url_present", cfg.Database.URL != "",
		"provider_key_present", cfg.Provider.APIKey != "",
		"provider_base_url", cfg.Provider.BaseURL)

	return cfg, nil
}
