package database

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations brings the translations schema up to date from the SQL files
// in migrationsPath and returns the schema version reached.
func RunMigrations(dsn string, migrationsPath string) (uint, error) {
	source := "file://" + filepath.ToSlash(migrationsPath)
	m, err := migrate.New(source, dsn)
	if err != nil {
		return 0, fmt.Errorf("migration init %s: %w", source, err)
	}
	defer m.Close()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("translations schema already up to date", slog.String("source", source))
	case err != nil:
		return 0, fmt.Errorf("migration up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migration version %d is dirty", version)
	}
	slog.Info("translations schema migrated",
		slog.String("source", source),
		slog.Uint64("version", uint64(version)),
	)
	return version, nil
}
