package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"shortener-service/internal/config"
	"shortener-service/internal/lib/logger/slogcute"

	"github.com/golang-migrate/migrate/v4"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	directionUp   = "up"
	directionDown = "down"
)

func main() {
	var direction string

	flag.StringVar(&direction, "direction", directionUp, "Direction to migrate (up or down)")
	cfg := config.MustLoad()

	log := setupLogger()

	log.Info("starting migrator",
		slog.String("env", cfg.Env),
		slog.String("driver", cfg.Storage.Driver),
		slog.String("migrations_path", cfg.Migrations.MigrationsPath),
		slog.String("migration_table", cfg.Migrations.MigrationTable),
		slog.String("direction", direction),
	)

	if err := validateDirection(direction); err != nil {
		log.Error("invalid direction", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srcURL := sourceURL(cfg.Migrations.MigrationsPath, cfg.Storage.Driver)

	dbURL, err := databaseURL(cfg.Storage, cfg.Migrations.MigrationTable)
	if err != nil {
		log.Error("invalid storage settings", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := runMigrations(log, srcURL, dbURL, direction); err != nil {
		log.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("migrations completed successfully")
}

func setupLogger() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewCuteHandler(os.Stdout)

	return slog.New(handler)
}

func validateDirection(direction string) error {
	if direction != directionUp && direction != directionDown {
		return fmt.Errorf("invalid direction '%s', must be 'up' or 'down'", direction)
	}
	return nil
}

// sourceURL points at the per-driver migrations directory.
func sourceURL(migrationsPath, driver string) string {
	return "file://" + filepath.ToSlash(filepath.Join(migrationsPath, driver))
}

// databaseURL builds the golang-migrate database URL for the configured storage.
func databaseURL(cfg config.StorageConfig, migrationTable string) (string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return fmt.Sprintf("sqlite3://%s?x-migrations-table=%s", cfg.Path, url.QueryEscape(migrationTable)), nil
	case config.DriverPostgres:
		u, err := url.Parse(cfg.DSN)
		if err != nil {
			return "", fmt.Errorf("storage.dsn must be a postgres:// URL: %w", err)
		}
		if u.Scheme != "postgres" && u.Scheme != "postgresql" {
			return "", fmt.Errorf("storage.dsn must be a postgres:// URL, got scheme %q", u.Scheme)
		}

		q := u.Query()
		q.Set("x-migrations-table", migrationTable)
		u.RawQuery = q.Encode()

		return u.String(), nil
	default:
		return "", fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func runMigrations(log *slog.Logger, sourceURL, databaseURL, direction string) error {
	log.Info("initializing migrator", slog.String("source", sourceURL))

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Error("failed to close migration source", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			log.Error("failed to close database", slog.String("error", dbErr.Error()))
		}
	}()

	switch direction {
	case directionUp:
		log.Info("applying migrations up")
		err = m.Up()
	case directionDown:
		log.Info("applying migrations down")
		err = m.Down()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
