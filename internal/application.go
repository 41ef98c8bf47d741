package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	sessionManager := usecase.NewSessionManager(logger, sessionRepo,
		usecase.WithOccupiedCellGuard(conf.Game.GuardOccupiedCells),
	)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, sessionManager)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, sessionManager, websocket.WithAllowedOrigins(conf.AllowedOrigins))
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	if conf.Storage == config.StorageMemory {
		return repository.NewMemorySessionRepository(conf.Game.SessionTTL), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewSessionRepository(redisStorage.Connection, conf.Game.SessionTTL), redisStorage.Close, nil
}
