package export

import (
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

func sampleOrders() []*entity.Order {
	return []*entity.Order{
		{
			ID:       "o1",
			Customer: entity.Customer{ID: "c1", Name: "Cliente 1", Email: "cliente1@ejemplo.com", Phone: "(11) 91234-5678"},
			Items: []entity.LineItem{
				{ProductID: "p1", Name: "Açaí & granola", Price: decimal.RequireFromString("12.5"), Quantity: 2},
				{ProductID: "p2", Name: "Café", Price: decimal.NewFromInt(5), Quantity: 1},
			},
			Status:    entity.OrderStatusNew,
			Total:     decimal.NewFromInt(30),
			CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestProductsCSV(t *testing.T) {
	out, err := ProductsCSV([]*entity.Product{
		{ID: "p1", Name: "Café, tostado", Category: "Bebidas", Price: decimal.NewFromInt(5), CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,category,description,price,image,created_at", lines[0])
	assert.Contains(t, lines[1], `"Café, tostado"`)
	assert.Contains(t, lines[1], "5.00")
}

func TestOrdersCSV_UnaFilaPorLinea(t *testing.T) {
	out, err := OrdersCSV(sampleOrders())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "cabecera + 2 líneas")
	assert.True(t, strings.HasPrefix(lines[0], "order_id,created_at,status"))
	assert.Contains(t, lines[1], "25.00")
	assert.Contains(t, lines[2], "30.00")
}

func TestOrdersXML_EstableYCanonico(t *testing.T) {
	a, err := OrdersXML(sampleOrders())
	require.NoError(t, err)
	b, err := OrdersXML(sampleOrders())
	require.NoError(t, err)
	assert.Equal(t, a.ETag, b.ETag, "mismos pedidos, mismo ETag")
	assert.Len(t, a.ETag, 64+2)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(a.Body))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "orders", root.Tag)
	assert.Equal(t, "1", root.SelectAttrValue("count", ""))
	order := root.SelectElement("order")
	require.NotNil(t, order)
	assert.Equal(t, "o1", order.SelectAttrValue("id", ""))
	assert.Equal(t, "30.00", order.SelectElement("total").Text())
	assert.Len(t, order.SelectElement("items").SelectElements("item"), 2)
	assert.Equal(t, "Açaí & granola", order.FindElement("items/item/name").Text())

	changed := sampleOrders()
	changed[0].Status = entity.OrderStatusCompleted
	c, err := OrdersXML(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a.ETag, c.ETag)
}

func TestOrdersXML_Vacio(t *testing.T) {
	out, err := OrdersXML(nil)
	require.NoError(t, err)
	assert.Contains(t, string(out.Body), `count="0"`)
}
