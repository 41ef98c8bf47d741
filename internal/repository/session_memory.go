package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memSession struct {
	mu       sync.RWMutex
	sessions map[string]memEntry
	ttl      time.Duration
	now      func() time.Time
}

type memEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// NewMemorySessionRepository - keeps sessions in process memory with the
// same expiry rules as the redis repository.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return newMemorySessionRepository(ttl, time.Now)
}

func newMemorySessionRepository(ttl time.Duration, now func() time.Time) *memSession {
	return &memSession{
		sessions: make(map[string]memEntry),
		ttl:      ttl,
		now:      now,
	}
}

func (that *memSession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	entry := memEntry{session: *session}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	// drop expired sessions while holding the write lock
	for id, existing := range that.sessions {
		if that.expired(existing) {
			delete(that.sessions, id)
		}
	}

	that.sessions[session.ID] = entry

	return nil
}

func (that *memSession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	entry, ok := that.sessions[id]
	that.mu.RUnlock()

	if !ok || that.expired(entry) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	session := entry.session

	return &session, nil
}

func (that *memSession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.sessions[id]
	if !ok || that.expired(entry) {
		delete(that.sessions, id)
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	delete(that.sessions, id)

	return nil
}

func (that *memSession) expired(entry memEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}
