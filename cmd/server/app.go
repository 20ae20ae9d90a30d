package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pharmed/clined-api/internal/config"
	"github.com/pharmed/clined-api/internal/platform/perplexity"
	"github.com/pharmed/clined-api/internal/platform/postgres"
	"github.com/pharmed/clined-api/internal/service"
	"github.com/pharmed/clined-api/internal/task"
)

// application bundles the long-lived dependencies of one server process.
type application struct {
	config            *config.Config
	logger            *slog.Logger
	db                *sql.DB
	taskRunner        *task.TaskRunner
	generationService service.GenerationService
}

// newApplication wires configuration into the full dependency graph:
// database, provider client, task runner, and the generation service.
func newApplication(cfg *config.Config) (*application, error) {
	logger := slog.Default()

	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	generator, err := perplexity.NewClient(logger, cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider client: %w", err)
	}

	recordStore := postgres.NewPostgresGenerationRecordStore(db, logger)

	runner := task.NewTaskRunner(task.TaskRunnerConfig{
		WorkerCount: cfg.Task.WorkerCount,
		QueueSize:   cfg.Task.QueueSize,
	}, logger)

	generationService, err := service.NewGenerationService(
		generator, recordStore, runner, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	return &application{
		config:            cfg,
		logger:            logger,
		db:                db,
		taskRunner:        runner,
		generationService: generationService,
	}, nil
}

// run starts the task runner and HTTP server, blocking until shutdown.
func (app *application) run() error {
	if err := app.taskRunner.Start(); err != nil {
		return fmt.Errorf("failed to start task runner: %w", err)
	}

	router := app.setupRouter()
	return app.startHTTPServer(context.Background(), router)
}

// cleanup releases resources during shutdown: drain the task queue first so
// in-flight persistence writes get a chance to finish, then close the pool.
func (app *application) cleanup() {
	app.taskRunner.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
	}
}

// setupDatabase opens the connection pool and verifies connectivity.
func setupDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")
	return db, nil
}
