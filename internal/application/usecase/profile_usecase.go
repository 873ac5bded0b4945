package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/application/ports"
	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
)

// ProfileUseCase perfil del negocio y asistente de onboarding.
type ProfileUseCase struct {
	users  repository.UserRepository
	seeder ports.DataSeeder
	now    func() time.Time
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(users repository.UserRepository, seeder ports.DataSeeder) *ProfileUseCase {
	return &ProfileUseCase{users: users, seeder: seeder, now: time.Now}
}

// Get devuelve el usuario con su perfil de negocio.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

// Update guarda el perfil. Nombre y tipo de negocio son obligatorios.
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return nil, fmt.Errorf("%w: business_name es requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidBusinessType(in.BusinessType) {
		return nil, fmt.Errorf("%w: business_type debe ser franchise, restaurant o autonomous", domain.ErrInvalidInput)
	}
	u, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.BusinessName = name
	u.BusinessType = in.BusinessType
	u.BusinessCategories = normalizeCategories(in.BusinessCategories)
	u.Description = strings.TrimSpace(in.Description)
	u.Phone = strings.TrimSpace(in.Phone)
	u.Address = strings.TrimSpace(in.Address)
	u.UpdatedAt = uc.now().UTC()
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

// CompleteOnboarding guarda tipo, nombre y categorías del negocio, marca el onboarding
// como completado y siembra los datos de ejemplo del usuario.
func (uc *ProfileUseCase) CompleteOnboarding(ctx context.Context, userID string, in dto.OnboardingRequest) (*dto.UserResponse, error) {
	if !entity.ValidBusinessType(in.BusinessType) {
		return nil, fmt.Errorf("%w: business_type es requerido", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return nil, fmt.Errorf("%w: business_name es requerido", domain.ErrInvalidInput)
	}
	categories := normalizeCategories(in.BusinessCategories)
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: seleccione al menos una categoría", domain.ErrInvalidInput)
	}
	u, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.BusinessType = in.BusinessType
	u.BusinessName = name
	u.BusinessCategories = categories
	u.OnboardingCompleted = true
	u.UpdatedAt = uc.now().UTC()
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}
	if err := uc.seeder.EnsureUserData(ctx, userID); err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

func (uc *ProfileUseCase) load(ctx context.Context, userID string) (*entity.User, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// normalizeCategories recorta, descarta vacías y elimina duplicados conservando el orden.
func normalizeCategories(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
