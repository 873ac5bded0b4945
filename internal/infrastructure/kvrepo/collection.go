// Package kvrepo implementa los repositorios de dominio sobre un kvstore.Store.
// Cada colección es un arreglo JSON bajo una clave fija y se lee/escribe completa:
//
//	products_<userId>   []productDoc
//	orders_<userId>     []orderDoc
//	customers           []customerDoc
//	user_<id>           userDoc
//	user_email_<email>  id del usuario (email en minúsculas)
package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
)

const customersKey = "customers"

func productsKey(userID string) string { return "products_" + userID }
func ordersKey(userID string) string { return "orders_" + userID }
func userKey(id string) string { return "user_" + id }
func userEmailKey(email string) string { return "user_email_" + email }

// keyedMutex serializa el read-modify-write de cada clave dentro del proceso.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// loadList lee el arreglo JSON de key. found=false si la clave no existe.
func loadList[T any](ctx context.Context, store kvstore.Store, key string) (list []T, found bool, err error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []T{}, false, nil
		}
		return nil, false, err
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, true, fmt.Errorf("decodificar %s: %w", key, err)
	}
	if list == nil {
		list = []T{}
	}
	return list, true, nil
}

// saveList reemplaza el arreglo completo de key.
func saveList[T any](ctx context.Context, store kvstore.Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}
