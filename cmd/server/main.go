// Package main implements the entry point for the catalog API server,
// a JSON REST API for a product catalog with user registration and
// token-based authentication.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/febdev/catalog-api/internal/config"
	"github.com/febdev/catalog-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run database migrations (up, down, or status) and exit",
	)
	seed := flag.Bool(
		"seed",
		false,
		"seed the database with sample products and users, then exit",
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logger.Setup(cfg.Server.LogLevel); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd); err != nil {
			slog.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *seed); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// run wires the application together and drives it until shutdown.
func run(cfg *config.Config, seed bool) error {
	app, err := newApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if seed {
		return app.seedDatabase(context.Background())
	}

	router := app.setupRouter()
	return app.startHTTPServer(context.Background(), router)
}
