// Package db holds the goose migrations for every supported store.
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Migrations returns the migrations directory for a store driver
// ("postgres" or "sqlite") together with its goose dialect.
func Migrations(driver string) (dir string, dialect string, err error) {
	switch driver {
	case "postgres":
		return "migrations/postgres", "postgres", nil
	case "sqlite":
		return "migrations/sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("unsupported db driver %q", driver)
	}
}

// FS exposes the embedded migration files.
func FS() fs.FS {
	return migrations
}

// Up applies all pending migrations for driver using the embedded files.
func Up(conn *sql.DB, driver string) error {
	dir, dialect, err := Migrations(driver)
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := goose.Up(conn, dir); err != nil {
		return fmt.Errorf("apply %s migrations: %w", driver, err)
	}
	return nil
}
