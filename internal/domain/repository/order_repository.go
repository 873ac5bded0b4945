package repository

import (
	"context"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	// GetByID devuelve (nil, nil) si el pedido no existe para ese usuario.
	GetByID(ctx context.Context, userID, id string) (*entity.Order, error)
	Create(ctx context.Context, order *entity.Order) error
	// Update devuelve domain.ErrNotFound si el pedido no existe.
	Update(ctx context.Context, order *entity.Order) error
	// Delete devuelve domain.ErrNotFound si el pedido no existe.
	Delete(ctx context.Context, userID, id string) error
	Initialized(ctx context.Context, userID string) (bool, error)
	SaveAllIfAbsent(ctx context.Context, userID string, orders []*entity.Order) (bool, error)
}
