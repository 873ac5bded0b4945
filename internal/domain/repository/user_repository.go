package repository

import (
	"context"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email (sin distinguir mayúsculas) ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByID y GetByEmail devuelven (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
