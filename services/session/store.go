package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// SessionStore persists serialized session records. The record is one opaque
// blob per session ID so role and identity can never desynchronize.
type SessionStore interface {
	Save(id string, data []byte, ttl time.Duration) error
	// Get returns the stored blob, or ErrSessionNotFound.
	Get(id string) ([]byte, error)
	Delete(id string) error
}

// RedisSessionStore keeps session records in a dedicated Redis DB.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(id string, data []byte, ttl time.Duration) error {
	ctx := context.Background()
	return s.Client.Set(ctx, sessionKeyPrefix+id, data, ttl).Err()
}

func (s *RedisSessionStore) Get(id string) ([]byte, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisSessionStore) Delete(id string) error {
	ctx := context.Background()
	return s.Client.Del(ctx, sessionKeyPrefix+id).Err()
}

// MemorySessionStore is the redis-free store used in tests and local dev.
type MemorySessionStore struct {
	mu      sync.Mutex
	records map[string][]byte
	expiry  map[string]time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		records: make(map[string][]byte),
		expiry:  make(map[string]time.Time),
	}
}

func (s *MemorySessionStore) Save(id string, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = append([]byte(nil), data...)
	if ttl > 0 {
		s.expiry[id] = time.Now().Add(ttl)
	} else {
		delete(s.expiry, id)
	}
	return nil
}

func (s *MemorySessionStore) Get(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.records[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if deadline, has := s.expiry[id]; has && time.Now().After(deadline) {
		delete(s.records, id)
		delete(s.expiry, id)
		return nil, ErrSessionNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *MemorySessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	delete(s.expiry, id)
	return nil
}
