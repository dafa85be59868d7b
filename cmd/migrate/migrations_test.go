package main

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pressly/goose/v3"
)

func repoMigrationsDir(t *testing.T, driver string) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file lives in cmd/migrate/, so repo root is ../..
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	return filepath.Join(repoRoot, "db", "migrations", driver)
}

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	for _, driver := range []string{"postgres", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			migrations, err := goose.CollectMigrations(repoMigrationsDir(t, driver), 0, goose.MaxVersion)
			if err != nil {
				t.Fatalf("expected migrations to parse, got error: %v", err)
			}
			if len(migrations) != 2 {
				t.Fatalf("expected 2 migrations, got %d", len(migrations))
			}
		})
	}
}
