package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/application/usecase"
	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/pdf"
)

func TestExportUseCase(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.addCustomers(t, "c1")
	e.addProduct(t, "p1", "Açaí", "10")
	_, err := newOrderUC(e).Create(ctx, testUserID, dto.OrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	uc := usecase.NewExportUseCase(e.products, e.orders)

	products, err := uc.Products(ctx, testUserID, "")
	require.NoError(t, err)
	assert.Equal(t, "productos.csv", products.Filename)
	assert.Contains(t, string(products.Body), "Açaí")

	_, err = uc.Products(ctx, testUserID, "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	csv, err := uc.Orders(ctx, testUserID, "CSV")
	require.NoError(t, err)
	assert.Empty(t, csv.ETag)
	assert.Len(t, strings.Split(strings.TrimSpace(string(csv.Body)), "\n"), 2)

	xml, err := uc.Orders(ctx, testUserID, "xml")
	require.NoError(t, err)
	assert.NotEmpty(t, xml.ETag)
	assert.True(t, strings.HasPrefix(xml.ContentType, "application/xml"))

	_, err = uc.Orders(ctx, testUserID, "pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceiptUseCase(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.addUser(t)
	e.addCustomers(t, "c1")
	e.addProduct(t, "p1", "Açaí", "10")
	order, err := newOrderUC(e).Create(ctx, testUserID, dto.OrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		Status:     string(entity.OrderStatusCompleted),
	})
	require.NoError(t, err)

	uc := usecase.NewReceiptUseCase(e.orders, e.users, pdf.NewReceiptGenerator())
	doc, err := uc.Render(ctx, testUserID, order.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	missing, err := uc.Render(ctx, testUserID, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
