// Package kvstore define el almacenamiento clave-valor donde se persisten las colecciones
// (un valor opaco por clave, leído y escrito completo) y sus implementaciones:
// memoria, bbolt, Redis y MongoDB. PostgreSQL vive en el paquete postgres.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound la clave no existe.
var ErrKeyNotFound = errors.New("kvstore: clave no encontrada")

// Store puerto de almacenamiento clave-valor. Las implementaciones son seguras para uso concurrente.
type Store interface {
	// Get devuelve ErrKeyNotFound si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete no falla si la clave no existe.
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// BatchWriter lo implementan los stores capaces de escribir varias claves de forma atómica.
type BatchWriter interface {
	SetMany(ctx context.Context, entries map[string][]byte) error
}

// SetMany escribe todas las entradas: en una sola operación si el store implementa
// BatchWriter, si no clave por clave.
func SetMany(ctx context.Context, s Store, entries map[string][]byte) error {
	if bw, ok := s.(BatchWriter); ok {
		return bw.SetMany(ctx, entries)
	}
	for k, v := range entries {
		if err := s.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}
