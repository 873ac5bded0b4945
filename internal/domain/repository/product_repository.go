package repository

import (
	"context"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los productos de un usuario se leen y escriben como un todo.
type ProductRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.Product, error)
	// GetByID devuelve (nil, nil) si el producto no existe para ese usuario.
	GetByID(ctx context.Context, userID, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update devuelve domain.ErrNotFound si el producto no existe.
	Update(ctx context.Context, product *entity.Product) error
	// Delete devuelve domain.ErrNotFound si el producto no existe.
	Delete(ctx context.Context, userID, id string) error
	// Initialized indica si el usuario ya tiene colección de productos (aunque esté vacía).
	Initialized(ctx context.Context, userID string) (bool, error)
	// SaveAllIfAbsent guarda la colección solo si el usuario aún no tiene una. Devuelve si la guardó.
	SaveAllIfAbsent(ctx context.Context, userID string, products []*entity.Product) (bool, error)
}
