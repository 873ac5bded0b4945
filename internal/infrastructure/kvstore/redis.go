package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	_ Store       = (*RedisStore)(nil)
	_ BatchWriter = (*RedisStore)(nil)
)

// RedisOptions conexión al servidor Redis.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // antepuesto a cada clave, ej. "bizpanel:"
}

// RedisStore implementación sobre Redis. Los valores no expiran.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore conecta y verifica con PING.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("kvstore redis: ping %s: %w", opts.Addr, err)
	}
	return &RedisStore{rdb: rdb, prefix: opts.Prefix}, nil
}

func (s *RedisStore) k(key string) string { return s.prefix + key }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, s.k(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("kvstore redis: get: %w", err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.k(key), value, 0).Err(); err != nil {
		return fmt.Errorf("kvstore redis: set: %w", err)
	}
	return nil
}

// SetMany escribe todas las entradas en un MULTI/EXEC.
func (s *RedisStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, s.k(k), v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("kvstore redis: set many: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.k(key)).Err(); err != nil {
		return fmt.Errorf("kvstore redis: delete: %w", err)
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.k(key)).Result()
	if err != nil {
		return false, fmt.Errorf("kvstore redis: exists: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
