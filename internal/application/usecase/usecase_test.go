package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizpanel-api/internal/application/seed"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvrepo"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "00000000-0000-0000-0000-000000000001"

type env struct {
	products  *kvrepo.ProductRepo
	orders    *kvrepo.OrderRepo
	customers *kvrepo.CustomerRepo
	users     *kvrepo.UserRepo
	seeder    *seed.Seeder
}

// newEnv arma repositorios sobre un store en memoria, sin datos sembrados.
func newEnv(t *testing.T) *env {
	t.Helper()
	store := kvstore.NewMemoryStore()
	e := &env{
		products:  kvrepo.NewProductRepository(store),
		orders:    kvrepo.NewOrderRepository(store),
		customers: kvrepo.NewCustomerRepository(store),
		users:     kvrepo.NewUserRepository(store),
	}
	e.seeder = seed.NewSeeder(e.customers, e.products, e.orders, seed.Counts{Products: 5, Orders: 3})
	return e
}

// addProduct guarda un producto del usuario de test.
func (e *env) addProduct(t *testing.T, id, name, price string) *entity.Product {
	t.Helper()
	p := &entity.Product{ID: id, UserID: testUserID, Name: name, Category: "Comida", Price: decimal.RequireFromString(price)}
	require.NoError(t, e.products.Create(context.Background(), p))
	return p
}

// addCustomers guarda el directorio de clientes c1..cN.
func (e *env) addCustomers(t *testing.T, ids ...string) {
	t.Helper()
	list := make([]*entity.Customer, 0, len(ids))
	for _, id := range ids {
		list = append(list, &entity.Customer{ID: id, Name: "Cliente " + id, Email: id + "@ejemplo.com"})
	}
	_, err := e.customers.SaveAllIfAbsent(context.Background(), list)
	require.NoError(t, err)
}
