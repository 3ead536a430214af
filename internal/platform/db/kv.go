package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odyssey-erp/hris-access/internal/platform/kv"
)

const schemaSQL = `CREATE TABLE IF NOT EXISTS portal_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStorage persists session keys in the portal_kv table.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage wraps an open pool. Call EnsureSchema before first use
// on a fresh database.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

// EnsureSchema creates the backing table when missing.
func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("platform/db: ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM portal_kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("platform/db: get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *PostgresStorage) Set(ctx context.Context, key, value string) error {
	const q = `INSERT INTO portal_kv (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.pool.Exec(ctx, q, key, value); err != nil {
		return fmt.Errorf("platform/db: set %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM portal_kv WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("platform/db: delete: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Take(ctx context.Context, key string) (string, bool, error) {
	var value string
	var ok bool
	err := WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `DELETE FROM portal_kv WHERE key = $1 RETURNING value`, key).Scan(&value)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("platform/db: take %s: %w", key, err)
	}
	return value, ok, nil
}

var _ kv.Storage = (*PostgresStorage)(nil)
