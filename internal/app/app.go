// Package app assembles the catalog store, the Open Library client and the
// catalog service from configuration. Every command builds on it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"bookcatalog/db"
	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/openlibrary"
	"bookcatalog/internal/platform/postgres"
	"bookcatalog/internal/platform/sqlite"
)

// Store is a catalog repository that can also register authors and report
// its health.
type Store interface {
	book.Repository
	SaveAuthor(ctx context.Context, a *book.Author) error
	Ping(ctx context.Context) error
}

type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Store   Store
	Service *book.Service

	closers []func()
}

// New opens the configured store and wires the service. The caller must call
// Close when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Store = store

	a.Service = book.NewService(store, a.workFetcher(ctx), book.EnrichConfig{
		OverwriteExisting: cfg.EnrichOverwriteExisting,
		Workers:           cfg.EnrichWorkers,
	}, logger)
	return a, nil
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) openStore(ctx context.Context) (Store, error) {
	cfg := a.Config
	switch cfg.DBDriver {
	case config.DriverSQLite:
		conn, err := sqlite.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = conn.Close() })
		if cfg.AutoMigrate {
			if err := db.Up(conn, config.DriverSQLite); err != nil {
				return nil, err
			}
		}
		a.Logger.Info("catalog store ready", slog.String("driver", cfg.DBDriver), slog.String("path", cfg.DBDSN))
		return book.NewSQLiteRepo(conn), nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DBDSN, a.Logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		if cfg.AutoMigrate {
			conn := stdlib.OpenDBFromPool(pool)
			err := db.Up(conn, config.DriverPostgres)
			_ = conn.Close()
			if err != nil {
				return nil, err
			}
		}
		return book.NewPostgresRepo(pool, cfg.DBTimeout), nil

	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

// workFetcher returns the Open Library client, fronted by the Redis cache
// when REDIS_URL is set and reachable.
func (a *App) workFetcher(ctx context.Context) book.WorkFetcher {
	cfg := a.Config
	client := openlibrary.NewClient(openlibrary.Options{
		BaseURL:   cfg.OpenLibraryBaseURL,
		UserAgent: cfg.OpenLibraryUserAgent,
		Timeout:   cfg.OpenLibraryTimeout,
		RPS:       cfg.OpenLibraryRPS,
	})
	if cfg.RedisURL == "" {
		return client
	}

	rdb, err := openlibrary.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		a.Logger.Warn("redis unavailable, bibliographic cache disabled", slog.Any("error", err))
		return client
	}
	a.closers = append(a.closers, func() { _ = rdb.Close() })
	return openlibrary.NewCachedClient(client, redis.UniversalClient(rdb), cfg.RedisTTL, a.Logger)
}
