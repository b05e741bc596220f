package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"astro-reading/internal/domain"
	"astro-reading/internal/repository"
)

var ErrSessionNotFound = errors.New("reading session not found")

// SessionStore guarda el perfil de una lectura mientras dura la sesion.
type SessionStore interface {
	Save(ctx context.Context, session domain.ReadingSession) error
	Load(ctx context.Context, id string) (domain.ReadingSession, error)
	Delete(ctx context.Context, id string) error
}

type memorySessionStore struct {
	mu    sync.Mutex
	items map[string]domain.ReadingSession
	now   func() time.Time
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		items: make(map[string]domain.ReadingSession),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *memorySessionStore) Save(_ context.Context, session domain.ReadingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("%w: empty session id", ErrInvalidInput)
	}
	s.purgeExpiredLocked()
	s.items[session.ID] = session
	return nil
}

// purgeExpiredLocked descarta lecturas abandonadas; requiere s.mu tomado.
func (s *memorySessionStore) purgeExpiredLocked() {
	now := s.now()
	for id, session := range s.items {
		if !now.Before(session.ExpiresAt) {
			delete(s.items, id)
		}
	}
}

func (s *memorySessionStore) Load(_ context.Context, id string) (domain.ReadingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.items[id]
	if !ok {
		return domain.ReadingSession{}, ErrSessionNotFound
	}
	if !s.now().Before(session.ExpiresAt) {
		delete(s.items, id)
		return domain.ReadingSession{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

type redisKVClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisSessionStore struct {
	client redisKVClient
	prefix string
	now    func() time.Time
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	if client == nil {
		return nil
	}
	return &redisSessionStore{
		client: client,
		prefix: "reading:session:",
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *redisSessionStore) Save(ctx context.Context, session domain.ReadingSession) error {
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("%w: empty session id", ErrInvalidInput)
	}
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+session.ID, payload, ttl).Err()
}

func (s *redisSessionStore) Load(ctx context.Context, id string) (domain.ReadingSession, error) {
	if strings.TrimSpace(id) == "" {
		return domain.ReadingSession{}, ErrSessionNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ReadingSession{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.ReadingSession{}, err
	}
	var session domain.ReadingSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.ReadingSession{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+id).Err()
}

type pgSessionStore struct {
	repo   repository.ReadingSessionRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewPgSessionStore usa Postgres como almacenamiento de sesion. Las filas
// vencidas se ignoran al leer y se purgan en cada Save.
func NewPgSessionStore(repo repository.ReadingSessionRepository, logger *zap.Logger) SessionStore {
	if repo == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pgSessionStore{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *pgSessionStore) Save(ctx context.Context, session domain.ReadingSession) error {
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("%w: empty session id", ErrInvalidInput)
	}
	if n, err := s.repo.DeleteExpired(ctx, s.now()); err != nil {
		s.logger.Warn("purge expired sessions failed", zap.Error(err))
	} else if n > 0 {
		s.logger.Debug("purged expired sessions", zap.Int64("count", n))
	}
	return s.repo.Create(ctx, session)
}

func (s *pgSessionStore) Load(ctx context.Context, id string) (domain.ReadingSession, error) {
	session, err := s.repo.GetActiveByID(ctx, id, s.now())
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ReadingSession{}, ErrSessionNotFound
	}
	return session, err
}

func (s *pgSessionStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
