package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteKV is a KV implementation backed by a single-table SQLite database.
type SQLiteKV struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite-backed key-value store at the given path.
// If path is ":memory:", uses an in-memory database. Sets WAL mode and
// creates the kv table if missing.
func Open(path string) (*SQLiteKV, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	// WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning key %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		if isFullErr(err) {
			return fmt.Errorf("setting key %q: %w", key, ErrQuotaExceeded)
		}
		return fmt.Errorf("setting key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// isFullErr reports whether err is SQLite's out-of-space condition
// (SQLITE_FULL surfaces as "database or disk is full").
func isFullErr(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "disk is full")
}
