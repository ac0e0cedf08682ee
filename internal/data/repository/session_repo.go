package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"trek-insurance/internal/data/entity"
	"trek-insurance/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRepository stores wizard sessions. FindByID returns (nil, nil) for a missing or
// expired session, and every write refreshes the expiry.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ==================== REDIS ====================

type redisSessionRepository struct {
	rdb *database.RedisClient
	ttl time.Duration
	log *zap.Logger
}

func NewRedisSessionRepository(rdb *database.RedisClient, ttl time.Duration, log *zap.Logger) SessionRepository {
	return &redisSessionRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "session"), zap.String("store", "redis")),
	}
}

func (r *redisSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if err := r.rdb.SetJSON(ctx, database.SessionKey(session.ID), session, r.ttl); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("create session %s: %w", session.ID, err)
	}
	return nil
}

func (r *redisSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	err := r.rdb.GetJSON(ctx, database.SessionKey(id), &session)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find session %s: %w", id, err)
	}

	return &session, nil
}

func (r *redisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if err := r.rdb.SetJSON(ctx, database.SessionKey(session.ID), session, r.ttl); err != nil {
		r.log.Error("Failed to save session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := r.rdb.Delete(ctx, database.SessionKey(id))
	if err != nil {
		r.log.Error("Failed to delete session",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return false, fmt.Errorf("delete session %s: %w", id, err)
	}
	return deleted, nil
}

// ==================== MEMORY ====================

type storedSession struct {
	session   entity.Session
	expiresAt time.Time
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]storedSession
	ttl      time.Duration
	log      *zap.Logger
}

// NewMemorySessionRepository keeps sessions in process memory. A ttl of 0 never expires them.
func NewMemorySessionRepository(ttl time.Duration, log *zap.Logger) SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]storedSession),
		ttl:      ttl,
		log:      log.With(zap.String("repository", "session"), zap.String("store", "memory")),
	}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("create session %s: already exists", session.ID)
	}
	r.put(session)
	return nil
}

func (r *memorySessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.RLock()
	stored, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if r.expired(stored) {
		r.evict(id)
		return nil, nil
	}

	session := stored.session
	session.State = session.State.Clone()
	return &session, nil
}

func (r *memorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(session)
	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[id]
	if !ok {
		return false, nil
	}
	delete(r.sessions, id)
	return !r.expired(stored), nil
}

// evict drops id if it is still expired once the write lock is held; a Save that raced in
// between is kept.
func (r *memorySessionRepository) evict(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[id]
	if !ok || !r.expired(stored) {
		return
	}
	delete(r.sessions, id)
	r.log.Debug("Session expired", zap.String("session_id", id.String()))
}

// put requires r.mu held for writing.
func (r *memorySessionRepository) put(session *entity.Session) {
	stored := storedSession{session: *session}
	stored.session.State = session.State.Clone()
	if r.ttl > 0 {
		stored.expiresAt = time.Now().Add(r.ttl)
	}
	r.sessions[session.ID] = stored
}

func (r *memorySessionRepository) expired(s storedSession) bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}
