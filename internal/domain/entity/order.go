package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido. Cualquier estado es alcanzable desde cualquier otro.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

// OrderStatuses lista los estados en el orden en que se muestran.
var OrderStatuses = []OrderStatus{OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted}

// Valid indica si s es uno de los estados conocidos.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted:
		return true
	}
	return false
}

// LineItem copia desnormalizada de id/nombre/precio del producto al crear el pedido, más la cantidad.
// No es una referencia viva: editar o borrar el producto no la modifica.
type LineItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal devuelve precio × cantidad.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order pedido de un cliente. Customer es una copia del cliente al momento de guardar.
// Total es derivado de Items y se guarda de forma redundante.
type Order struct {
	ID        string
	UserID    string
	Customer  Customer
	Items     []LineItem
	Status    OrderStatus
	Total     decimal.Decimal
	CreatedAt time.Time
}

// ItemCount suma las cantidades de todas las líneas.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
