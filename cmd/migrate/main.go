package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"circulation/internal/config"
	"circulation/internal/platform/logging"
	"circulation/internal/platform/postgres"
)

var errUsage = errors.New("usage: migrate -command up|down|status|create [-name NAME]")

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := config.Load(false)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	if err := run(context.Background(), cfg, logger, *command, *name); err != nil {
		logger.Error("migration failed", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, command, name string) error {
	if command == "create" {
		return create(cfg.MigrationsDir, name, logger)
	}
	if !isDBCommand(command) {
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}

	pool, err := postgres.Open(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return apply(ctx, db, cfg.MigrationsDir, command, logger)
}

func isDBCommand(command string) bool {
	switch command {
	case "up", "down", "status":
		return true
	}
	return false
}

func apply(ctx context.Context, db *sql.DB, dir, command string, logger *slog.Logger) error {
	switch command {
	case "up":
		if err := goose.UpContext(ctx, db, dir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied", "dir", dir)
	case "down":
		if err := goose.DownContext(ctx, db, dir); err != nil {
			return fmt.Errorf("roll back migration: %w", err)
		}
		logger.Info("migration rolled back", "dir", dir)
	case "status":
		if err := goose.StatusContext(ctx, db, dir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	}
	return nil
}

func create(dir, name string, logger *slog.Logger) error {
	if name == "" {
		return fmt.Errorf("name is required for 'create': %w", errUsage)
	}
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("create migration: %w", err)
	}
	logger.Info("migration created", "dir", dir, "name", name)
	return nil
}
