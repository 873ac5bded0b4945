package seed_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizpanel-api/internal/application/seed"
	"github.com/jhoicas/bizpanel-api/internal/domain/catalog"
	"github.com/jhoicas/bizpanel-api/internal/domain/sales"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvrepo"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	seeder    *seed.Seeder
	customers *kvrepo.CustomerRepo
	products  *kvrepo.ProductRepo
	orders    *kvrepo.OrderRepo
}

func newFixture(seedValue uint64) fixture {
	store := kvstore.NewMemoryStore()
	f := fixture{
		customers: kvrepo.NewCustomerRepository(store),
		products:  kvrepo.NewProductRepository(store),
		orders:    kvrepo.NewOrderRepository(store),
	}
	f.seeder = seed.NewSeeder(f.customers, f.products, f.orders, seed.Counts{Products: 5, Orders: 3},
		seed.WithRand(rand.New(rand.NewPCG(seedValue, seedValue))),
		seed.WithClock(func() time.Time { return fixedNow }),
	)
	return f
}

func TestEnsureUserData_PrimeraVisita(t *testing.T) {
	ctx := context.Background()
	f := newFixture(1)

	require.NoError(t, f.seeder.EnsureUserData(ctx, "u1"))

	customers, err := f.customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, seed.CustomerCount)
	assert.Equal(t, "Cliente 1", customers[0].Name)
	assert.Equal(t, "cliente1@ejemplo.com", customers[0].Email)
	assert.Regexp(t, `^\(11\) 9\d{4}-\d{4}$`, customers[0].Phone)

	products, err := f.products.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, products, 5)
	for i, p := range products {
		assert.Equal(t, "u1", p.UserID)
		assert.Contains(t, catalog.Categories, p.Category)
		assert.Contains(t, catalog.SampleImages, p.Image)
		assert.True(t, p.Price.IntPart() >= 10 && p.Price.IntPart() <= 109, "precio %s fuera de rango", p.Price)
		assert.True(t, p.Price.Equal(p.Price.Truncate(0)), "precio entero")
		assert.False(t, p.CreatedAt.After(fixedNow))
		assert.True(t, fixedNow.Sub(p.CreatedAt) < 30*24*time.Hour)
		assert.Equal(t, "Producto "+string(rune('1'+i)), p.Name)
	}

	orders, err := f.orders.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 3)

	productIDs := map[string]bool{}
	for _, p := range products {
		productIDs[p.ID] = true
	}
	for _, o := range orders {
		assert.True(t, sales.Consistent(o), "total guardado = Σ precio × cantidad")
		assert.True(t, o.Status.Valid())
		require.NotEmpty(t, o.Items)
		assert.LessOrEqual(t, len(o.Items), 3)
		seen := map[string]bool{}
		for _, it := range o.Items {
			assert.True(t, productIDs[it.ProductID], "la línea referencia un producto sembrado")
			assert.False(t, seen[it.ProductID], "productos distintos por pedido")
			seen[it.ProductID] = true
			assert.True(t, it.Quantity >= 1 && it.Quantity <= 3)
		}
	}
}

func TestEnsureUserData_NoResiembra(t *testing.T) {
	ctx := context.Background()
	f := newFixture(2)

	require.NoError(t, f.seeder.EnsureUserData(ctx, "u1"))
	products, err := f.products.ListByUser(ctx, "u1")
	require.NoError(t, err)
	first := products[0].ID

	require.NoError(t, f.seeder.EnsureUserData(ctx, "u1"))
	products, err = f.products.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, first, products[0].ID)

	// el usuario borra todo: la siguiente visita no vuelve a sembrar
	for _, p := range products {
		require.NoError(t, f.products.Delete(ctx, "u1", p.ID))
	}
	orders, err := f.orders.ListByUser(ctx, "u1")
	require.NoError(t, err)
	for _, o := range orders {
		require.NoError(t, f.orders.Delete(ctx, "u1", o.ID))
	}

	require.NoError(t, f.seeder.EnsureUserData(ctx, "u1"))
	products, err = f.products.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, products)
	orders, err = f.orders.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestEnsureUserData_UsuariosAislados(t *testing.T) {
	ctx := context.Background()
	f := newFixture(3)

	require.NoError(t, f.seeder.EnsureUserData(ctx, "u1"))
	require.NoError(t, f.seeder.EnsureUserData(ctx, "u2"))

	customers, err := f.customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, seed.CustomerCount, "el directorio se genera una sola vez")

	p1, err := f.products.ListByUser(ctx, "u1")
	require.NoError(t, err)
	p2, err := f.products.ListByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, p2, 5)
	assert.NotEqual(t, p1[0].ID, p2[0].ID)
	assert.Equal(t, "u2", p2[0].UserID)
}

func TestEnsureCustomers_Idempotente(t *testing.T) {
	ctx := context.Background()
	f := newFixture(4)

	require.NoError(t, f.seeder.EnsureCustomers(ctx))
	before, err := f.customers.List(ctx)
	require.NoError(t, err)

	require.NoError(t, f.seeder.EnsureCustomers(ctx))
	after, err := f.customers.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before[0].ID, after[0].ID)
}
