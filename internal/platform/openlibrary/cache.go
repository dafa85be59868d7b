package openlibrary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "openlibrary:work:"

// Fetcher is satisfied by Client and CachedClient.
type Fetcher interface {
	GetWorkDetails(ctx context.Context, workID string) (*WorkDetails, error)
}

// CachedClient is a read-through Redis cache in front of a Fetcher. Only
// successful, well-formed payloads are cached. Redis failures never fail a
// lookup; they are logged and the upstream is called directly.
type CachedClient struct {
	next   Fetcher
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedClient(next Fetcher, rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *CachedClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedClient{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "openlibrary_cache")),
	}
}

func cacheKey(workID string) string {
	return cacheKeyPrefix + workID
}

func (c *CachedClient) GetWorkDetails(ctx context.Context, workID string) (*WorkDetails, error) {
	key := cacheKey(workID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if d, decErr := DecodeWorkDetails(raw); decErr == nil {
			return d, nil
		}
		c.logger.Warn("discarding corrupt cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("cache get failed", slog.String("key", key), slog.Any("error", err))
	}

	d, err := c.next.GetWorkDetails(ctx, workID)
	if err != nil {
		return nil, err
	}

	if len(d.Raw) > 0 {
		if err := c.rdb.Set(ctx, key, []byte(d.Raw), c.ttl).Err(); err != nil {
			c.logger.Warn("cache set failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return d, nil
}

// NewRedisClient parses redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = 3 * time.Second
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
