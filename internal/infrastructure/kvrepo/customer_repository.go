package kvrepo

import (
	"context"
	"fmt"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo directorio global de clientes bajo la clave "customers".
type CustomerRepo struct {
	store kvstore.Store
	locks *keyedMutex
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(store kvstore.Store) *CustomerRepo {
	return &CustomerRepo{store: store, locks: newKeyedMutex()}
}

func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	docs, _, err := loadList[customerDoc](ctx, r.store, customersKey)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]*entity.Customer, 0, len(docs))
	for _, d := range docs {
		c := d.entity()
		out = append(out, &c)
	}
	return out, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	docs, _, err := loadList[customerDoc](ctx, r.store, customersKey)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	for _, d := range docs {
		if d.ID == id {
			c := d.entity()
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) Initialized(ctx context.Context) (bool, error) {
	return r.store.Exists(ctx, customersKey)
}

func (r *CustomerRepo) SaveAllIfAbsent(ctx context.Context, customers []*entity.Customer) (bool, error) {
	defer r.locks.lock(customersKey)()

	ok, err := r.store.Exists(ctx, customersKey)
	if err != nil || ok {
		return false, err
	}
	docs := make([]customerDoc, 0, len(customers))
	for _, c := range customers {
		docs = append(docs, toCustomerDoc(*c))
	}
	if err := saveList(ctx, r.store, customersKey, docs); err != nil {
		return false, fmt.Errorf("seed customers: %w", err)
	}
	return true, nil
}
