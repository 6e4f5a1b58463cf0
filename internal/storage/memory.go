package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"topologia/pkg"
)

// MemoryStore is an in-memory implementation for development and tests.
// Sessions live in a go-cache whose janitor evicts them ttl after their last
// write.
type MemoryStore struct {
	mu       sync.Mutex // serialises read-modify-write in SaveAttempt
	sessions *cache.Cache
}

// NewMemoryStore creates a store whose sessions expire ttl after their last
// write. A non-positive ttl disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		return &MemoryStore{sessions: cache.New(cache.NoExpiration, 0)}
	}

	return &MemoryStore{sessions: cache.New(ttl, ttl)}
}

// SaveAttempt appends the attempt to its session and refreshes its expiry
func (m *MemoryStore) SaveAttempt(ctx context.Context, attempt pkg.QuizAttempt) error {
	if attempt.SessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var attempts []pkg.QuizAttempt
	if cached, ok := m.sessions.Get(attempt.SessionID); ok {
		attempts = slices.Clone(cached.([]pkg.QuizAttempt))
	}
	m.sessions.SetDefault(attempt.SessionID, append(attempts, attempt))

	return nil
}

// ListAttempts returns a copy of the session's attempts
func (m *MemoryStore) ListAttempts(ctx context.Context, sessionID string) ([]pkg.QuizAttempt, error) {
	cached, ok := m.sessions.Get(sessionID)
	if !ok {
		return []pkg.QuizAttempt{}, nil
	}

	return slices.Clone(cached.([]pkg.QuizAttempt)), nil
}

// Sessions reports how many sessions are held, expired or not
func (m *MemoryStore) Sessions() int {
	return m.sessions.ItemCount()
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) Close() error {
	m.sessions.Flush()
	return nil
}
