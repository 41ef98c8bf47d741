package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type sessionUseCase interface {
	NewSession(ctx context.Context, xName, oName string) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	TakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	ResetGame(ctx context.Context, id string) (*entity.Session, error)
	EndSession(ctx context.Context, id string) error
}

// NewRouter - registers the ping and session routes.
func NewRouter(logger *slog.Logger, sessions sessionUseCase) http.Handler {
	handler := NewSessionHandler(logger, sessions)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", PingHandler)

	mux.HandleFunc("POST /sessions", handler.Create)
	mux.HandleFunc("GET /sessions/{id}", handler.Get)
	mux.HandleFunc("POST /sessions/{id}/turn", handler.TakeTurn)
	mux.HandleFunc("POST /sessions/{id}/reset", handler.Reset)
	mux.HandleFunc("DELETE /sessions/{id}", handler.Delete)

	return mux
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
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

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
