// Package main implements the entry point for the SkyView API server,
// the REST backend of the apartment-rental management app.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/skyviewhq/skyview-api/internal/config"
	"github.com/skyviewhq/skyview-api/internal/platform/logger"
	"github.com/skyviewhq/skyview-api/internal/platform/mongodb"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, and wires the application dependencies.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	db, err := mongodb.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	appLogger.Info("Connected to MongoDB", "database", cfg.Database.Name)

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		// The connection outlives newApplication only on success.
		_ = db.Close(ctx)
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
