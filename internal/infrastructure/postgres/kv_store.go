package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
)

//go:embed migrations/001_kv_entries.sql
var kvSchema string

var (
	_ kvstore.Store       = (*KVStore)(nil)
	_ kvstore.BatchWriter = (*KVStore)(nil)
)

// KVStore implementación de kvstore.Store sobre la tabla kv_entries.
type KVStore struct {
	q    Querier
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewKVStore crea la tabla si no existe y devuelve el adaptador. Close cierra el pool.
func NewKVStore(ctx context.Context, pool *pgxpool.Pool) (*KVStore, error) {
	if _, err := pool.Exec(ctx, kvSchema); err != nil {
		return nil, fmt.Errorf("migrar kv_entries: %w", err)
	}
	return &KVStore{q: pool, pool: pool, tx: NewTxRunner(pool)}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.q.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kvstore.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get kv entry: %w", err)
	}
	return v, nil
}

const upsertKV = `
	INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.q.Exec(ctx, upsertKV, key, value); err != nil {
		return fmt.Errorf("upsert kv entry: %w", err)
	}
	return nil
}

// SetMany hace el upsert de todas las entradas dentro de una transacción.
func (s *KVStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	return s.tx.Run(ctx, func(q Querier) error {
		for k, v := range entries {
			if _, err := q.Exec(ctx, upsertKV, k, v); err != nil {
				return fmt.Errorf("upsert kv entry %s: %w", k, err)
			}
		}
		return nil
	})
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.q.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete kv entry: %w", err)
	}
	return nil
}

func (s *KVStore) Exists(ctx context.Context, key string) (bool, error) {
	var ok bool
	err := s.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM kv_entries WHERE key = $1)`, key).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists kv entry: %w", err)
	}
	return ok, nil
}

func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}
