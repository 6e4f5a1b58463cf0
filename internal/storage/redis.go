package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"topologia/pkg"
)

const quizPrefix = "quiz:"

// RedisStorage keeps each session's attempts in a Redis list
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage creates a new Redis storage instance from a redis:// URL
func NewRedisStorage(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStorage, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("STORAGE_REDIS_URL is required for the redis backend")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{client: client, ttl: ttl}, nil
}

// key generates a Redis key for the given session ID
func (r *RedisStorage) key(sessionID string) string {
	return quizPrefix + sessionID
}

// SaveAttempt appends the attempt and refreshes the session TTL
func (r *RedisStorage) SaveAttempt(ctx context.Context, attempt pkg.QuizAttempt) error {
	if attempt.SessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}

	data, err := sonic.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt: %w", err)
	}

	key := r.key(attempt.SessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}

	return nil
}

// ListAttempts reads every attempt of the session
func (r *RedisStorage) ListAttempts(ctx context.Context, sessionID string) ([]pkg.QuizAttempt, error) {
	raw, err := r.client.LRange(ctx, r.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	out := make([]pkg.QuizAttempt, 0, len(raw))
	for _, item := range raw {
		var a pkg.QuizAttempt
		if err := sonic.UnmarshalString(item, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attempt: %w", err)
		}
		out = append(out, a)
	}

	return out, nil
}

// Ping tests Redis connection
func (r *RedisStorage) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisStorage) Close() error {
	return r.client.Close()
}
