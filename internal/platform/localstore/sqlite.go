// Package localstore keeps session keys in a SQLite file on the local
// machine, so a CLI session outlives the process that created it.
package localstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/odyssey-erp/hris-access/internal/platform/kv"
)

const schemaSQL = `CREATE TABLE IF NOT EXISTS portal_kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
}

// DefaultPath returns the per-user session file, e.g.
// ~/.config/hris/session.db on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("platform/localstore: config dir: %w", err)
	}
	return filepath.Join(dir, "hris", "session.db"), nil
}

// Storage is a kv.Storage backed by a SQLite database file.
type Storage struct {
	pool *sqlitex.Pool
	path string
}

// Open creates the file and its parent directory when missing.
func Open(path string) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("platform/localstore: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("platform/localstore: create dir: %w", err)
	}
	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    2,
		PrepareConn: prepareConn,
	})
	if err != nil {
		return nil, fmt.Errorf("platform/localstore: open %s: %w", path, err)
	}
	return &Storage{pool: pool, path: path}, nil
}

func prepareConn(conn *sqlite.Conn) error {
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("platform/localstore: %s: %w", pragma, err)
		}
	}
	if err := sqlitex.ExecuteTransient(conn, schemaSQL, nil); err != nil {
		return fmt.Errorf("platform/localstore: ensure schema: %w", err)
	}
	return nil
}

// Path reports the database file.
func (s *Storage) Path() string { return s.path }

// Close releases every connection.
func (s *Storage) Close() error {
	if err := s.pool.Close(); err != nil {
		return fmt.Errorf("platform/localstore: close %s: %w", s.path, err)
	}
	return nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return "", false, fmt.Errorf("platform/localstore: take: %w", err)
	}
	defer s.pool.Put(conn)

	value, found, err := queryValue(conn, `SELECT value FROM portal_kv WHERE key = ?`, key)
	if err != nil {
		return "", false, fmt.Errorf("platform/localstore: get %s: %w", key, err)
	}
	return value, found, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("platform/localstore: take: %w", err)
	}
	defer s.pool.Put(conn)

	const q = `INSERT INTO portal_kv (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	if err := sqlitex.Execute(conn, q, &sqlitex.ExecOptions{Args: []any{key, value}}); err != nil {
		return fmt.Errorf("platform/localstore: set %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, keys ...string) (err error) {
	if len(keys) == 0 {
		return nil
	}
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("platform/localstore: take: %w", err)
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)
	for _, key := range keys {
		if err = sqlitex.Execute(conn, `DELETE FROM portal_kv WHERE key = ?`, &sqlitex.ExecOptions{Args: []any{key}}); err != nil {
			return fmt.Errorf("platform/localstore: delete %s: %w", key, err)
		}
	}
	return nil
}

func (s *Storage) Take(ctx context.Context, key string) (string, bool, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return "", false, fmt.Errorf("platform/localstore: take: %w", err)
	}
	defer s.pool.Put(conn)

	value, found, err := queryValue(conn, `DELETE FROM portal_kv WHERE key = ? RETURNING value`, key)
	if err != nil {
		return "", false, fmt.Errorf("platform/localstore: take %s: %w", key, err)
	}
	return value, found, nil
}

func queryValue(conn *sqlite.Conn, query, key string) (value string, found bool, err error) {
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{key},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			value = stmt.ColumnText(0)
			found = true
			return nil
		},
	})
	return value, found, err
}

var _ kv.Storage = (*Storage)(nil)
