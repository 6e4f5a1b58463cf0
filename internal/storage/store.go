package storage

import (
	"context"
	"errors"
	"fmt"

	"topologia/pkg"
	"topologia/src/model"
)

// ErrUnsupportedBackend indicates an unknown storage kind in configuration.
var ErrUnsupportedBackend = errors.New("storage: unsupported backend")

// AttemptStore persists graded quiz attempts per session
type AttemptStore interface {
	SaveAttempt(ctx context.Context, attempt pkg.QuizAttempt) error
	// ListAttempts returns the attempts of a session, oldest first. An unknown
	// session yields an empty list.
	ListAttempts(ctx context.Context, sessionID string) ([]pkg.QuizAttempt, error)
	Ping(ctx context.Context) error
	Close() error
}

// NewStore builds the backend named by cfg.Kind
func NewStore(ctx context.Context, cfg model.StorageConfig) (AttemptStore, error) {
	switch cfg.Kind {
	case "", "memory":
		return NewMemoryStore(cfg.TTL), nil
	case "redis":
		return NewRedisStorage(ctx, cfg.RedisURL, cfg.TTL)
	case "sqlite":
		return NewSQLiteStore(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, cfg.Kind)
	}
}
