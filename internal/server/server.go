package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bookshelf/internal/config"
	"bookshelf/internal/docstore"
	"bookshelf/internal/inventory"
	"bookshelf/internal/logger"
	"bookshelf/internal/review"
)

const shutdownTimeout = 10 * time.Second

// example queries printed at startup so the service can be tried by hand.
var exampleQueries = map[config.Service][]string{
	config.Inventory: {
		"?title=The%20Day%20of%20the%20Triffids&author=John%20Wyndham",
	},
	config.Reviews: {
		"?title=The%20Last%20Man&author=Mary%20Shelley",
		"?title=The%20Day%20of%20the%20Triffids&author=John%20Wyndham",
	},
}

// BooksHandlers builds the service selected by cfg on top of coll.
func BooksHandlers(svc config.Service, coll docstore.Collection, log *logger.Logger) Handlers {
	if svc == config.Reviews {
		return ReviewHandlers(review.NewHTTPHandler(review.NewService(review.NewMongoRepo(coll)), log))
	}
	return InventoryHandlers(inventory.NewHTTPHandler(inventory.NewService(inventory.NewMongoRepo(coll)), log))
}

// Run connects to MongoDB, serves the selected service and returns once ctx
// is cancelled and in-flight requests have drained.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	log = log.With("service", string(cfg.Service))
	log.Info("connecting to MongoDB", "url", config.RedactURL(cfg.DatabaseURL))

	db, err := docstore.Connect(ctx, cfg.DatabaseURL, config.DatabaseName)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			log.Error("failed to disconnect MongoDB", "error", err)
		}
	}()

	books := BooksHandlers(cfg.Service, db.Collection(config.CollectionName), log)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      NewRouter(ctx, cfg, log, books, db),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	baseURL := fmt.Sprintf("http://%s%s", cfg.Addr(), config.ResourcePath())
	log.Info("HTTP REST API listening", "url", baseURL)
	for _, q := range exampleQueries[cfg.Service] {
		log.Info("example", "url", baseURL+q)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
