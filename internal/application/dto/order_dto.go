package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest producto y cantidad de una línea del formulario de pedido.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest entrada del formulario de pedido (alta y edición).
// Status vacío equivale a "new" en el alta y a "sin cambio" en la edición.
type OrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
	Status     string             `json:"status" example:"new"`
}

// UpdateOrderStatusRequest cambio de estado desde el listado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" example:"processing"`
}

// OrderFilter parámetros del listado de pedidos.
type OrderFilter struct {
	Query  string
	Status string // "", "all" o un estado válido
}

// LineItemResponse línea de pedido (copia del producto al momento del pedido).
type LineItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string             `json:"id"`
	Customer  CustomerResponse   `json:"customer"`
	Items     []LineItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Status    string             `json:"status"`
	Total     decimal.Decimal    `json:"total" swaggertype:"string"`
	CreatedAt time.Time          `json:"created_at"`
}

// OrderListResponse listado de pedidos (sin paginación). Items nunca es null.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// OrderCSVRow fila de la exportación CSV de pedidos: una por línea de pedido.
type OrderCSVRow struct {
	OrderID       string `csv:"order_id"`
	CreatedAt     string `csv:"created_at"`
	Status        string `csv:"status"`
	CustomerName  string `csv:"customer_name"`
	CustomerEmail string `csv:"customer_email"`
	ProductID     string `csv:"product_id"`
	ProductName   string `csv:"product_name"`
	Price         string `csv:"price"`
	Quantity      int    `csv:"quantity"`
	Subtotal      string `csv:"subtotal"`
	OrderTotal    string `csv:"order_total"`
}
