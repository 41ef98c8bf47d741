package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const sessionKeyPrefix = "session:"

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository - stores sessions in redis. Every write refreshes
// the key expiry to ttl; zero ttl keeps keys forever.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSession) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	err = that.client.Set(ctx, sessionKeyPrefix+session.ID, sessionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	response, err := that.client.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	var existing entity.Session
	if err = json.Unmarshal([]byte(response), &existing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &existing, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session by id: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return nil
}
