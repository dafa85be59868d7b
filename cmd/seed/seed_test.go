package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/app"
	"bookcatalog/internal/config"
)

func TestSeed_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := app.New(ctx, &config.Config{
		DBDriver:      config.DriverSQLite,
		DBDSN:         filepath.Join(t.TempDir(), "seed.db"),
		AutoMigrate:   true,
		EnrichWorkers: 1,
	}, logger)
	require.NoError(t, err)
	defer a.Close()

	want := 0
	for _, sa := range catalog {
		want += len(sa.books)
	}

	inserted, err := seed(ctx, a.Store, logger)
	require.NoError(t, err)
	assert.Equal(t, want, inserted)

	inserted, err = seed(ctx, a.Store, logger)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	books, err := a.Store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, books, want)

	uk, err := a.Store.FindByAuthorCountryAndMinYear(ctx, "UK", nil)
	require.NoError(t, err)
	assert.Len(t, uk, 5)
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		DBDriver:      config.DriverSQLite,
		DBDSN:         filepath.Join(t.TempDir(), "run.db"),
		AutoMigrate:   true,
		EnrichWorkers: 1,
	}

	require.NoError(t, run(ctx, cfg, logger))
	require.NoError(t, run(ctx, cfg, logger))

	cfg.AutoMigrate = false
	cfg.DBDSN = filepath.Join(t.TempDir(), "missing-schema.db")
	assert.Error(t, run(ctx, cfg, logger))
}
