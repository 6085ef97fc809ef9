// Package sqlite provides a SQLite-backed key-value store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/cbd-helper/internal/colors"
	_ "modernc.org/sqlite"
)

var (
	// ErrEmptyKey indicates a write with an empty key.
	ErrEmptyKey = errors.New("empty key")
	// ErrClosed indicates use of a closed store.
	ErrClosed = errors.New("store is closed")
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
);
`

// Store keeps JSON-encoded values in a single kv table keyed by namespace and key.
// Namespace validation is the caller's concern.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at dbPath.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite store: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite store: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open db: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite store: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite store: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Get returns decoded values for keys in namespace, or the whole namespace
// when no keys are given. Numbers decode as json.Number.
func (s *Store) Get(ctx context.Context, namespace string, keys ...string) (map[string]any, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	start := time.Now()

	query := "SELECT key, value FROM kv WHERE namespace = ?"
	args := []any{namespace}
	if len(keys) > 0 {
		placeholders := make([]string, len(keys))
		for i, k := range keys {
			placeholders[i] = "?"
			args = append(args, k)
		}
		query += " AND key IN (" + strings.Join(placeholders, ", ") + ")"
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: get: %w", err)
	}
	defer rows.Close()

	out := make(map[string]any)
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("sqlite store: scan: %w", err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("sqlite store: decode %s/%s: %w", namespace, key, err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite store: get: %w", err)
	}

	colors.StructuredDebug("storage", "get", "completed", nil, namespace, map[string]any{
		"keys":             len(keys),
		"found":            len(out),
		"duration_seconds": time.Since(start).Seconds(),
	})
	return out, nil
}

// Set upserts values in a single transaction; nil values delete their key.
func (s *Store) Set(ctx context.Context, namespace string, values map[string]any) error {
	if s.db == nil {
		return ErrClosed
	}
	encoded := make(map[string]*string, len(values))
	for k, v := range values {
		if k == "" {
			return ErrEmptyKey
		}
		if v == nil {
			encoded[k] = nil
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("sqlite store: encode %s: %w", k, err)
		}
		text := string(data)
		encoded[k] = &text
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite store: begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for k, v := range encoded {
		if v == nil {
			if _, err := tx.ExecContext(ctx, "DELETE FROM kv WHERE namespace = ? AND key = ?", namespace, k); err != nil {
				return fmt.Errorf("sqlite store: delete %s: %w", k, err)
			}
			continue
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO kv (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			namespace, k, *v, now)
		if err != nil {
			return fmt.Errorf("sqlite store: set %s: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite store: commit: %w", err)
	}
	return nil
}

func decodeValue(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
