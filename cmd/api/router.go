package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/platform/crypto"
)

const maxRequestBytes = 1 << 20

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(ctx context.Context, cfg *config.Config, logger *slog.Logger, store pinger, books *book.HTTPHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(logger))
	r.Use(httpx.RecoveryMiddleware(logger))
	r.Use(httpx.SecurityHeadersMiddleware(cfg.EnableHSTS))
	r.Use(httpx.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(httpx.RequestSizeLimitMiddleware(maxRequestBytes))
	if cfg.RateLimitRPS > 0 {
		r.Use(httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.Text(w, http.StatusOK, "ok")
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			httpx.JSONError(w, r, http.StatusServiceUnavailable, "db not ready")
			return
		}
		httpx.Text(w, http.StatusOK, "ready")
	})

	var enrichGuard func(http.Handler) http.Handler
	if cfg.JWTSecret != "" {
		enrichGuard = httpx.RequireRole(cfg.JWTSecret, crypto.RoleAdmin)
	} else {
		logger.Warn("JWT_SECRET not set, enrichment endpoint is unauthenticated")
	}
	r.Mount("/books", books.Routes(enrichGuard))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusNotFound, "Cannot "+r.Method+" "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}
