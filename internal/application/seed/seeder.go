// Package seed genera los datos de ejemplo: el directorio de clientes compartido y,
// por usuario, productos y pedidos aleatorios. Solo escribe claves que aún no existen.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizpanel-api/internal/domain/catalog"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
	"github.com/jhoicas/bizpanel-api/internal/domain/sales"
)

// CustomerCount tamaño del directorio de clientes.
const CustomerCount = 5

const day = 24 * time.Hour

// Counts cantidad de productos y pedidos que se generan por usuario.
type Counts struct {
	Products int
	Orders   int
}

// Option ajusta el Seeder (tests deterministas).
type Option func(*Seeder)

// WithRand fija la fuente aleatoria.
func WithRand(r *rand.Rand) Option {
	return func(s *Seeder) { s.rnd = r }
}

// WithClock fija el reloj usado para createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// Seeder siembra datos de ejemplo de forma perezosa.
type Seeder struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	counts    Counts

	mu  sync.Mutex // rand.Rand no es seguro para uso concurrente
	rnd *rand.Rand
	now func() time.Time
}

// NewSeeder construye el seeder.
func NewSeeder(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	counts Counts,
	opts ...Option,
) *Seeder {
	s := &Seeder{
		customers: customers,
		products:  products,
		orders:    orders,
		counts:    counts,
		rnd:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureCustomers genera el directorio de clientes si la clave "customers" no existe.
func (s *Seeder) EnsureCustomers(ctx context.Context) error {
	ok, err := s.customers.Initialized(ctx)
	if err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	if ok {
		return nil
	}
	if _, err := s.customers.SaveAllIfAbsent(ctx, s.generateCustomers(CustomerCount)); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	return nil
}

// EnsureUserData genera productos y luego pedidos del usuario, cada colección
// solo si su clave no existe. Una colección vaciada por el usuario no se vuelve a sembrar.
func (s *Seeder) EnsureUserData(ctx context.Context, userID string) error {
	if err := s.EnsureCustomers(ctx); err != nil {
		return err
	}

	ok, err := s.products.Initialized(ctx, userID)
	if err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if !ok {
		if _, err := s.products.SaveAllIfAbsent(ctx, userID, s.generateProducts(userID, s.counts.Products)); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	ok, err = s.orders.Initialized(ctx, userID)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if ok {
		return nil
	}
	products, err := s.products.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	orders := s.generateOrders(userID, products, customers, s.counts.Orders)
	if _, err := s.orders.SaveAllIfAbsent(ctx, userID, orders); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	return nil
}

func (s *Seeder) generateCustomers(n int) []*entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Customer, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &entity.Customer{
			ID:    uuid.New().String(),
			Name:  fmt.Sprintf("Cliente %d", i),
			Email: fmt.Sprintf("cliente%d@ejemplo.com", i),
			Phone: fmt.Sprintf("(11) 9%d-%d", s.rnd.IntN(9000)+1000, s.rnd.IntN(9000)+1000),
		})
	}
	return out
}

func (s *Seeder) generateProducts(userID string, n int) []*entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &entity.Product{
			ID:          uuid.New().String(),
			UserID:      userID,
			Name:        fmt.Sprintf("Producto %d", i),
			Category:    catalog.Categories[s.rnd.IntN(len(catalog.Categories))],
			Description: fmt.Sprintf("Descripción del producto %d. Este es un producto de ejemplo.", i),
			Price:       decimal.NewFromInt(int64(s.rnd.IntN(100) + 10)),
			Image:       catalog.SampleImages[s.rnd.IntN(len(catalog.SampleImages))],
			CreatedAt:   s.pastDate(),
		})
	}
	return out
}

// generateOrders arma cada pedido con 1 a 3 productos distintos, cantidad 1 a 3.
// Sin productos o sin clientes no se generan pedidos.
func (s *Seeder) generateOrders(userID string, products []*entity.Product, customers []*entity.Customer, n int) []*entity.Order {
	out := make([]*entity.Order, 0, n)
	if len(products) == 0 || len(customers) == 0 {
		return out
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i++ {
		picked := s.rnd.Perm(len(products))
		count := min(s.rnd.IntN(3)+1, len(products))

		items := make([]entity.LineItem, 0, count)
		for _, idx := range picked[:count] {
			p := products[idx]
			items = append(items, entity.LineItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  s.rnd.IntN(3) + 1,
			})
		}
		order := &entity.Order{
			ID:        uuid.New().String(),
			UserID:    userID,
			Customer:  *customers[s.rnd.IntN(len(customers))],
			Items:     items,
			Status:    entity.OrderStatuses[s.rnd.IntN(len(entity.OrderStatuses))],
			CreatedAt: s.pastDate(),
		}
		sales.Recalculate(order)
		out = append(out, order)
	}
	return out
}

// pastDate devuelve un instante entre 0 y 29 días atrás. Se llama con s.mu tomado.
func (s *Seeder) pastDate() time.Time {
	return s.now().UTC().Add(-time.Duration(s.rnd.IntN(30)) * day)
}
