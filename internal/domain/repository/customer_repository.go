package repository

import (
	"context"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// CustomerRepository directorio de clientes compartido (solo lectura para la API).
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Initialized(ctx context.Context) (bool, error)
	SaveAllIfAbsent(ctx context.Context, customers []*entity.Customer) (bool, error)
}
