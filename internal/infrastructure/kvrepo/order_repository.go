package kvrepo

import (
	"context"
	"fmt"

	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre la clave orders_<userId>.
type OrderRepo struct {
	store kvstore.Store
	locks *keyedMutex
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(store kvstore.Store) *OrderRepo {
	return &OrderRepo{store: store, locks: newKeyedMutex()}
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	docs, _, err := loadList[orderDoc](ctx, r.store, ordersKey(userID))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, userID, id string) (*entity.Order, error) {
	docs, _, err := loadList[orderDoc](ctx, r.store, ordersKey(userID))
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	for _, d := range docs {
		if d.ID == id {
			return d.entity(), nil
		}
	}
	return nil, nil
}

func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	key := ordersKey(order.UserID)
	defer r.locks.lock(key)()

	docs, _, err := loadList[orderDoc](ctx, r.store, key)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	docs = append(docs, toOrderDoc(order))
	if err := saveList(ctx, r.store, key, docs); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	key := ordersKey(order.UserID)
	defer r.locks.lock(key)()

	docs, _, err := loadList[orderDoc](ctx, r.store, key)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	for i, d := range docs {
		if d.ID == order.ID {
			docs[i] = toOrderDoc(order)
			if err := saveList(ctx, r.store, key, docs); err != nil {
				return fmt.Errorf("update order: %w", err)
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *OrderRepo) Delete(ctx context.Context, userID, id string) error {
	key := ordersKey(userID)
	defer r.locks.lock(key)()

	docs, _, err := loadList[orderDoc](ctx, r.store, key)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	kept := docs[:0]
	for _, d := range docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(docs) {
		return domain.ErrNotFound
	}
	if err := saveList(ctx, r.store, key, kept); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) Initialized(ctx context.Context, userID string) (bool, error) {
	return r.store.Exists(ctx, ordersKey(userID))
}

func (r *OrderRepo) SaveAllIfAbsent(ctx context.Context, userID string, orders []*entity.Order) (bool, error) {
	key := ordersKey(userID)
	defer r.locks.lock(key)()

	ok, err := r.store.Exists(ctx, key)
	if err != nil || ok {
		return false, err
	}
	docs := make([]orderDoc, 0, len(orders))
	for _, o := range orders {
		docs = append(docs, toOrderDoc(o))
	}
	if err := saveList(ctx, r.store, key, docs); err != nil {
		return false, fmt.Errorf("seed orders: %w", err)
	}
	return true, nil
}
