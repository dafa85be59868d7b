package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bookcatalog/internal/app"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer a.Close()

	inserted, err := seed(ctx, a.Store, logger)
	if err != nil {
		return err
	}

	books, err := a.Store.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("count books: %w", err)
	}
	logger.Info("seed complete", slog.Int("inserted", inserted), slog.Int("total_books", len(books)))
	return nil
}
