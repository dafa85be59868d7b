package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logging"
	"bookcatalog/internal/platform/postgres"
	"bookcatalog/internal/platform/sqlite"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	if err := run(context.Background(), cfg, logger, *command, *name); err != nil {
		logger.Error("migration failed", slog.String("command", *command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, command, name string) error {
	fsys, dir, dialect, err := migrationSource(cfg.MigrationsDir, cfg.DBDriver)
	if err != nil {
		return err
	}

	if command == "create" {
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		target := cfg.MigrationsDir
		if target == "" {
			target = "db/" + dir
		}
		if err := goose.Create(nil, target, name, "sql"); err != nil {
			return err
		}
		logger.Info("migration created", slog.String("name", name), slog.String("dir", target))
		return nil
	}

	conn, closeConn, err := openDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeConn()

	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.Up(conn, dir); err != nil {
			return err
		}
		logger.Info("migrations applied", slog.String("driver", cfg.DBDriver))
	case "down":
		if err := goose.Down(conn, dir); err != nil {
			return err
		}
		logger.Info("migration rolled back", slog.String("driver", cfg.DBDriver))
	case "status":
		return goose.Status(conn, dir)
	default:
		return fmt.Errorf("unknown command %q, use: up, down, status, create", command)
	}
	return nil
}

func openDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, func(), error) {
	if cfg.DBDriver == config.DriverSQLite {
		conn, err := sqlite.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		return conn, func() { _ = conn.Close() }, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DBDSN, logger)
	if err != nil {
		return nil, nil, err
	}
	conn := stdlib.OpenDBFromPool(pool)
	return conn, func() {
		_ = conn.Close()
		pool.Close()
	}, nil
}
