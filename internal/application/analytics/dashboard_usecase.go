// Package analytics contiene el caso de uso del resumen del panel (Dashboard).
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/application/ports"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
	"github.com/jhoicas/bizpanel-api/internal/domain/sales"
)

const dashboardRecentOrders = 5 // pedidos en el widget "Pedidos recientes"

// DashboardUseCase genera el resumen del panel del usuario.
//
// La primera visita siembra los datos de ejemplo; las siguientes solo leen.
type DashboardUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	seeder   ports.DataSeeder
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	seeder ports.DataSeeder,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, orders: orders, users: users, seeder: seeder}
}

// GetSummary construye el DashboardSummaryDTO del usuario.
//
// Productos y pedidos se cargan en paralelo una vez garantizada la siembra.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	if err := uc.seeder.EnsureUserData(ctx, userID); err != nil {
		return nil, fmt.Errorf("dashboard: datos de ejemplo: %w", err)
	}

	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type ordersResult struct {
		list []*entity.Order
		err  error
	}

	productsCh := make(chan productsResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		list, err := uc.products.ListByUser(ctx, userID)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.orders.ListByUser(ctx, userID)
		ordersCh <- ordersResult{list, err}
	}()

	products := <-productsCh
	orders := <-ordersCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos: %w", orders.err)
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: usuario: %w", err)
	}
	businessName := ""
	if user != nil {
		businessName = user.BusinessName
	}

	return &dto.DashboardSummaryDTO{
		BusinessName:   businessName,
		TotalProducts:  len(products.list),
		TotalOrders:    len(orders.list),
		TotalRevenue:   sales.Revenue(orders.list),
		OrdersByStatus: countByStatus(orders.list),
		RecentOrders:   dto.FromOrders(recentOrders(orders.list, dashboardRecentOrders)),
	}, nil
}

func countByStatus(orders []*entity.Order) dto.OrdersByStatusDTO {
	var out dto.OrdersByStatusDTO
	for _, o := range orders {
		switch o.Status {
		case entity.OrderStatusNew:
			out.New++
		case entity.OrderStatusProcessing:
			out.Processing++
		case entity.OrderStatusCompleted:
			out.Completed++
		}
	}
	return out
}

// recentOrders ordena por createdAt descendente y toma los n primeros.
// No modifica el slice recibido.
func recentOrders(orders []*entity.Order, n int) []*entity.Order {
	sorted := make([]*entity.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
