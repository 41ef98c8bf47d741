package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// SessionManager runs games stored in a session repository. Commands are
// serialized so a session is never loaded and stored by two turns at once.
type SessionManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo

	guardOccupied bool
	newID         func() string

	mu sync.Mutex
}

type Option func(*SessionManager)

// WithOccupiedCellGuard - new sessions reject moves onto occupied cells.
func WithOccupiedCellGuard(enabled bool) Option {
	return func(manager *SessionManager) {
		manager.guardOccupied = enabled
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(manager *SessionManager) {
		manager.newID = newID
	}
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo, opts ...Option) *SessionManager {
	manager := &SessionManager{
		logger:      logger.With("component", "session_manager"),
		sessionRepo: sessionRepo,
		newID:       uuid.NewString,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

func (that *SessionManager) NewSession(ctx context.Context, xName, oName string) (*entity.Session, error) {
	var gameOpts []entity.GameOption
	if that.guardOccupied {
		gameOpts = append(gameOpts, entity.WithOccupiedCellGuard())
	}

	session := entity.NewSession(that.newID(), xName, oName, gameOpts...)

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "session", session.ID, "guarded", session.Guarded)

	return session, nil
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// TakeTurn - plays the current symbol at cell. Turns on a finished game are
// accepted and leave the session unchanged.
func (that *SessionManager) TakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "TakeTurn", "session", id)

	return that.update(ctx, id, func(game *entity.Game) error {
		wasOver := game.IsOver()

		if err := game.TakeTurn(cell); err != nil {
			log.Debug("turn rejected", "cell", cell, "error", err)
			return fmt.Errorf("failed to take turn: %w", err)
		}

		if !wasOver && game.IsOver() {
			winner, _ := game.Winner()
			log.Info("game over", "status", game.Status(), "winner", winner)
		}

		return nil
	})
}

// ResetGame - clears the board and hands the first move back to X.
func (that *SessionManager) ResetGame(ctx context.Context, id string) (*entity.Session, error) {
	return that.update(ctx, id, func(game *entity.Game) error {
		game.Reset()
		return nil
	})
}

func (that *SessionManager) EndSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	that.logger.Info("session ended", "session", id)

	return nil
}

func (that *SessionManager) update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	game, err := session.Game()
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	if err = apply(game); err != nil {
		return nil, err
	}

	session.State = game.State()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}
