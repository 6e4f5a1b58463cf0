package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	_ "modernc.org/sqlite"

	"topologia/pkg"
)

// SQLiteStore keeps attempts in a local SQLite database file
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS quiz_attempts (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS quiz_attempts_session ON quiz_attempts (session_id, created_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

func (s *SQLiteStore) SaveAttempt(ctx context.Context, attempt pkg.QuizAttempt) error {
	if attempt.SessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}

	payload, err := sonic.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quiz_attempts (id, session_id, created_at, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload
	`, attempt.ID, attempt.SessionID, attempt.CreatedAt.UnixNano(), payload)
	if err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}

	return nil
}

func (s *SQLiteStore) ListAttempts(ctx context.Context, sessionID string) ([]pkg.QuizAttempt, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload FROM quiz_attempts
		WHERE session_id = ?
		ORDER BY created_at, rowid
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	out := []pkg.QuizAttempt{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var a pkg.QuizAttempt
		if err := sonic.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attempt: %w", err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
