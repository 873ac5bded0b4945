package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un usuario (dueño del negocio).
type Product struct {
	ID          string
	UserID      string // dueño
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal
	Image       string // URL
	CreatedAt   time.Time
}
