package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0,00", formatMoney(decimal.Zero))
	assert.Equal(t, "$999,90", formatMoney(decimal.RequireFromString("999.9")))
	assert.Equal(t, "$25.000,00", formatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "$1.000.000,50", formatMoney(decimal.RequireFromString("1000000.5")))
	assert.Equal(t, "-$1.234,50", formatMoney(decimal.RequireFromString("-1234.5")))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "1B9D6BCD", shortID("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"))
	assert.Equal(t, "ABC", shortID("abc"))
}

func TestRender_GeneraPDF(t *testing.T) {
	order := &entity.Order{
		ID:       "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
		Customer: entity.Customer{ID: "c1", Name: "Cliente 1", Email: "cliente1@ejemplo.com", Phone: "(11) 91234-5678"},
		Items: []entity.LineItem{
			{ProductID: "p1", Name: "Açaí 500ml", Price: decimal.RequireFromString("12.50"), Quantity: 2},
			{ProductID: "p2", Name: "Café", Price: decimal.NewFromInt(5), Quantity: 1},
		},
		Status:    entity.OrderStatusProcessing,
		Total:     decimal.NewFromInt(30),
		CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	business := &entity.User{BusinessName: "Açaí da Ana", BusinessCategories: []string{"Comida", "Bebidas"}}

	out, err := NewReceiptGenerator().Render(order, business)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe ser un PDF")

	_, err = NewReceiptGenerator().Render(order, nil)
	assert.NoError(t, err, "sin perfil de negocio se usan valores por defecto")
}
