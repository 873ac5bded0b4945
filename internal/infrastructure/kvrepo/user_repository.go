package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo guarda cada usuario en user_<id> y un índice user_email_<email> -> id.
type UserRepo struct {
	store kvstore.Store
	locks *keyedMutex
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store kvstore.Store) *UserRepo {
	return &UserRepo{store: store, locks: newKeyedMutex()}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create persiste un usuario nuevo. El email es único sin distinguir mayúsculas.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	emailKey := userEmailKey(normalizeEmail(user.Email))
	defer r.locks.lock(emailKey)()

	taken, err := r.store.Exists(ctx, emailKey)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if taken {
		return domain.ErrEmailAlreadyExists
	}
	raw, err := json.Marshal(toUserDoc(user))
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	// registro e índice juntos: un usuario sin índice no podría iniciar sesión
	err = kvstore.SetMany(ctx, r.store, map[string][]byte{
		userKey(user.ID): raw,
		emailKey:         []byte(user.ID),
	})
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	raw, err := r.store.Get(ctx, userKey(id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	var d userDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return d.entity(), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	id, err := r.store.Get(ctx, userEmailKey(normalizeEmail(email)))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return r.GetByID(ctx, string(id))
}

// Update reemplaza el perfil. El email no se reindexa: no es editable.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	defer r.locks.lock(userKey(user.ID))()

	ok, err := r.store.Exists(ctx, userKey(user.ID))
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	if err := r.put(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepo) put(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(toUserDoc(user))
	if err != nil {
		return err
	}
	return r.store.Set(ctx, userKey(user.ID), raw)
}
