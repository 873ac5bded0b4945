package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriceInput precio recibido como número JSON o como texto ("12.50" o "12,50").
// Set indica si el campo vino en el cuerpo con un valor no vacío.
type PriceInput struct {
	Value decimal.Decimal
	Set   bool
}

// UnmarshalJSON acepta número, string con punto o coma decimal, null o "".
func (p *PriceInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = PriceInput{}
		return nil
	}
	var raw string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	} else {
		raw = string(b)
	}
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		*p = PriceInput{}
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("precio inválido %q", raw)
	}
	*p = PriceInput{Value: d, Set: true}
	return nil
}

// ProductRequest entrada del formulario de producto (alta y edición).
type ProductRequest struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Price       PriceInput `json:"price" swaggertype:"string" example:"12,50"`
	Image       string     `json:"image"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse listado de productos (sin paginación). Items nunca es null.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoryListResponse categorías sugeridas del catálogo.
type CategoryListResponse struct {
	Items []string `json:"items"`
}

// ProductCSVRow fila de la exportación CSV de productos.
type ProductCSVRow struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
	Price       string `csv:"price"`
	Image       string `csv:"image"`
	CreatedAt   string `csv:"created_at"`
}
