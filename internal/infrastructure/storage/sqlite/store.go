package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"svw.info/reversemath/internal/ports"
)

const timeFormat = time.RFC3339Nano

const schema = `CREATE TABLE IF NOT EXISTS score (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	total      INTEGER NOT NULL DEFAULT 0,
	updated_at TEXT NOT NULL
)`

// Store keeps the score counter in a single-row SQLite table.
type Store struct {
	sqlDB *sql.DB
}

var _ ports.ScoreStore = (*Store)(nil)

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	return open(dsn)
}

// OpenMemory opens a private in-memory store.
func OpenMemory() (*Store, error) { return open(":memory:") }

func open(dsn string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// :memory: databases are per connection
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Load(ctx context.Context) (int, error) {
	var total int
	err := s.sqlDB.QueryRowContext(ctx, `SELECT total FROM score WHERE id = 1`).Scan(&total)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load score: %w", err)
	}
	return total, nil
}

func (s *Store) Add(ctx context.Context, points int) (int, error) {
	var total int
	err := s.sqlDB.QueryRowContext(ctx, `
		INSERT INTO score (id, total, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET total = total + excluded.total, updated_at = excluded.updated_at
		RETURNING total`,
		points, time.Now().UTC().Format(timeFormat),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("add score: %w", err)
	}
	return total, nil
}

func (s *Store) Reset(ctx context.Context) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO score (id, total, updated_at) VALUES (1, 0, ?)
		ON CONFLICT(id) DO UPDATE SET total = 0, updated_at = excluded.updated_at`,
		time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("reset score: %w", err)
	}
	return nil
}
