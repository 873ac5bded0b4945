package usecase

import (
	"context"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/application/ports"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
)

// CustomerUseCase lectura del directorio de clientes (no editable por el usuario).
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	seeder ports.DataSeeder
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, seeder ports.DataSeeder) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, seeder: seeder}
}

// List devuelve el directorio completo; lo genera si todavía no existe.
func (uc *CustomerUseCase) List(ctx context.Context) (*dto.CustomerListResponse, error) {
	if err := uc.seeder.EnsureCustomers(ctx); err != nil {
		return nil, err
	}
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, dto.FromCustomer(*c))
	}
	return &dto.CustomerListResponse{Items: items}, nil
}

// GetByID obtiene un cliente. Devuelve (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	out := dto.FromCustomer(*c)
	return &out, nil
}
