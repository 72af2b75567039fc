package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain"
)

// sourceURL turns a migrations directory into a file:// source URL,
// checking it exists first so a wrong path fails with a clear error.
func sourceURL(migrationsPath string) (string, error) {
	abs, err := filepath.Abs(migrationsPath)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// RunMigrations brings the events/participants schema up to date.
func RunMigrations(dsn string, migrationsPath string) error {
	source, err := sourceURL(migrationsPath)
	if err != nil {
		return &domain.StoreError{Op: "migrations source", Path: migrationsPath, Err: err}
	}
	m, err := migrate.New(source, dsn)
	if err != nil {
		return &domain.StoreError{Op: "migrate init", Path: migrationsPath, Err: err}
	}
	defer m.Close()

	before, _, _ := m.Version()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return &domain.StoreError{Op: "migrate up", Path: migrationsPath, Err: err}
	}

	version, dirty, _ := m.Version()
	entry := log.WithFields(log.Fields{"from": before, "to": version, "dirty": dirty})
	if version == before {
		entry.Debug("Schema already current")
		return nil
	}
	entry.Info("✅ Migrations applied")
	return nil
}
