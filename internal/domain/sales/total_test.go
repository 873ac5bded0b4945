package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/sales"
)

func TestOrderTotal(t *testing.T) {
	items := []entity.LineItem{
		{ProductID: "a", Name: "Café", Price: decimal.RequireFromString("12.50"), Quantity: 2},
		{ProductID: "b", Name: "Pan", Price: decimal.RequireFromString("3.10"), Quantity: 3},
	}
	// 12.50*2 + 3.10*3 = 25.00 + 9.30
	assert.True(t, decimal.RequireFromString("34.30").Equal(sales.OrderTotal(items)))
}

func TestOrderTotal_SinLineas(t *testing.T) {
	assert.True(t, sales.OrderTotal(nil).IsZero())
}

func TestRecalculateYConsistent(t *testing.T) {
	o := &entity.Order{
		Items: []entity.LineItem{{Price: decimal.NewFromInt(10), Quantity: 3}},
		Total: decimal.NewFromInt(1),
	}
	assert.False(t, sales.Consistent(o))

	sales.Recalculate(o)
	assert.True(t, decimal.NewFromInt(30).Equal(o.Total))
	assert.True(t, sales.Consistent(o))
}

func TestRevenue(t *testing.T) {
	orders := []*entity.Order{
		{Total: decimal.NewFromInt(30)},
		{Total: decimal.RequireFromString("0.75")},
	}
	assert.True(t, decimal.RequireFromString("30.75").Equal(sales.Revenue(orders)))
}
