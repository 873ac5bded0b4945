package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	BusinessName  string          `json:"business_name"`
	TotalProducts int             `json:"total_products"`
	TotalOrders   int             `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue" swaggertype:"string"` // Σ totales guardados

	OrdersByStatus OrdersByStatusDTO `json:"orders_by_status"`

	// Los 5 pedidos más recientes por created_at, del más nuevo al más viejo
	RecentOrders []OrderResponse `json:"recent_orders"`
}

// OrdersByStatusDTO conteo de pedidos por estado.
type OrdersByStatusDTO struct {
	New        int `json:"new"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
}
