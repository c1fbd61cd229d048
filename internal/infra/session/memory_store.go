// Package session implements the identity session store. Sessions live in
// process memory: an opaque token maps to a user ID with a TTL. This is the
// only shared mutable state the application holds outside the database.
package session

import (
	"context"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

type sessionEntry struct {
	userID    uint
	expiresAt time.Time
}

// memoryStore is a mutex-guarded in-memory implementation of SessionStore.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

// sweepInterval is how often the janitor drops sessions that expired but
// were never resolved again.
const sweepInterval = 10 * time.Minute

// NewMemoryStore is the constructor for memoryStore. The TTL comes from the
// session config section.
func NewMemoryStore(cfg *config.Config) service.SessionStore {
	store := newMemoryStore(cfg.Session.TTL, time.Now)
	go store.janitor(sweepInterval)

	return store
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		now:      now,
	}
}

// Create issues a new opaque session token bound to the user.
func (s *memoryStore) Create(_ context.Context, userID uint) (string, error) {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sessionEntry{
		userID:    userID,
		expiresAt: s.now().Add(s.ttl),
	}

	return token, nil
}

// Resolve returns the user bound to the token. Expired entries are removed
// lazily on lookup.
func (s *memoryStore) Resolve(_ context.Context, token string) (uint, bool) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return 0, false
	}

	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()

		return 0, false
	}

	return entry.userID, true
}

// Destroy removes the session. Unknown tokens are a no-op.
func (s *memoryStore) Destroy(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// janitor periodically sweeps expired sessions so abandoned tokens do not
// accumulate for the process lifetime.
func (s *memoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.sweepExpired()
	}
}

func (s *memoryStore) sweepExpired() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for token, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
