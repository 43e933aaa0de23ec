package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"mini_store/internal/utils"
)

// Sessions expire with the auth token that created them.
const sessionTTL = 24 * time.Hour

// Store keeps session state alive between stateless HTTP requests, keyed by
// user id. Loading a key that does not exist yields a fresh logged-out
// session, never an error.
type Store interface {
	Load(ctx context.Context, userID string) (Session, error)
	Save(ctx context.Context, userID string, s Session) error
	Delete(ctx context.Context, userID string) error
}

// RedisStore keeps sessions in Redis as JSON values with a TTL, so carts
// survive server restarts and multiple server instances see the same cart.
type RedisStore struct {
	cache *utils.Cache
}

// NewRedisStore creates a redis-backed session store.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{cache: utils.NewCache(rdb)}
}

func sessionKey(userID string) string {
	return "session:user:" + userID
}

func (s *RedisStore) Load(ctx context.Context, userID string) (Session, error) {
	var sess Session
	found, err := s.cache.Get(ctx, sessionKey(userID), &sess)
	if err != nil {
		return New(), err
	}
	if !found {
		return New(), nil
	}
	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, sess Session) error {
	return s.cache.Set(ctx, sessionKey(userID), sess, sessionTTL)
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, sessionKey(userID))
}

// MemoryStore keeps sessions in a process-local map, used when no Redis
// address is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Load(ctx context.Context, userID string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return New(), nil
	}
	return sess, nil
}

func (s *MemoryStore) Save(ctx context.Context, userID string, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = sess
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
