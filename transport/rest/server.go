package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - wires the game API routes.
func NewRouter(logger *slog.Logger, games gameUseCase) http.Handler {
	h := newHandlers(logger, games)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)
	r.Post("/games", h.createGame)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.getGame)
		r.Delete("/", h.deleteGame)
		r.Post("/turns", h.makeTurn)
		r.Post("/restart", h.restartGame)
		r.Put("/mode", h.setMode)
	})

	return r
}

// Start - serves handler until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
