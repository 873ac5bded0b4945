package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	_ Store       = (*BoltStore)(nil)
	_ BatchWriter = (*BoltStore)(nil)
)

var boltBucket = []byte("bizpanel")

// BoltStore implementación embebida sobre bbolt (un archivo, un bucket). Driver por defecto.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore abre (o crea) el archivo y el bucket.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("kvstore bolt: abrir %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kvstore bolt: crear bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		// v solo es válido dentro de la transacción
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("kvstore bolt: get: %w", err)
	}
	return out, nil
}

func (s *BoltStore) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("kvstore bolt: set: %w", err)
	}
	return nil
}

// SetMany escribe todas las entradas en una sola transacción.
func (s *BoltStore) SetMany(_ context.Context, entries map[string][]byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)
		for k, v := range entries {
			if err := b.Put([]byte(k), v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("kvstore bolt: set many: %w", err)
	}
	return nil
}

func (s *BoltStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("kvstore bolt: delete: %w", err)
	}
	return nil
}

func (s *BoltStore) Exists(_ context.Context, key string) (bool, error) {
	var ok bool
	err := s.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket(boltBucket).Get([]byte(key)) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("kvstore bolt: exists: %w", err)
	}
	return ok, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
