// Package server wires one of the two services onto an HTTP router and runs
// it until the context is cancelled.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bookshelf/internal/config"
	"bookshelf/internal/httpx"
	"bookshelf/internal/inventory"
	"bookshelf/internal/logger"
	"bookshelf/internal/review"
)

// Handlers are the four verb handlers of the books resource.
type Handlers struct {
	Get    http.HandlerFunc
	Post   http.HandlerFunc
	Put    http.HandlerFunc
	Delete http.HandlerFunc
}

func InventoryHandlers(h *inventory.HTTPHandler) Handlers {
	return Handlers{Get: h.List, Post: h.Create, Put: h.Update, Delete: h.Delete}
}

func ReviewHandlers(h *review.HTTPHandler) Handlers {
	return Handlers{Get: h.Get, Post: h.Create, Put: h.Update, Delete: h.Delete}
}

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter mounts books under /v1/books together with health endpoints.
// The rate limiter's janitor stops when ctx is cancelled.
func NewRouter(ctx context.Context, cfg config.Config, log *logger.Logger, books Handlers, db Pinger) http.Handler {
	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(log))
	r.Use(httpx.RecoveryMiddleware(log))
	r.Use(httpx.SecurityHeadersMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.Text(w, http.StatusOK, "ok")
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			log.Warn("readiness check failed", "error", err)
			httpx.Text(w, http.StatusServiceUnavailable, "db not ready")
			return
		}
		httpx.Text(w, http.StatusOK, "ready")
	})

	r.Route(config.ResourcePath(), func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(httpx.RequestSizeLimitMiddleware(config.PayloadLimit))

		r.Get("/", books.Get)
		r.Post("/", books.Post)
		r.Put("/", books.Put)
		r.Delete("/", books.Delete)
	})

	return r
}
