// Package export serializa el catálogo y los pedidos para descarga: CSV (gocsv)
// y XML canónico (etree + c14n) con ETag estable.
package export

import (
	"fmt"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// ProductsCSV una fila por producto, en el orden recibido.
func ProductsCSV(products []*entity.Product) ([]byte, error) {
	rows := make([]*dto.ProductCSVRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &dto.ProductCSVRow{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Price:       p.Price.StringFixed(2),
			Image:       p.Image,
			CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("export: csv productos: %w", err)
	}
	return out, nil
}

// OrdersCSV una fila por línea de pedido. El total del pedido se repite en cada línea.
func OrdersCSV(orders []*entity.Order) ([]byte, error) {
	rows := make([]*dto.OrderCSVRow, 0, len(orders))
	for _, o := range orders {
		for _, it := range o.Items {
			rows = append(rows, &dto.OrderCSVRow{
				OrderID:       o.ID,
				CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
				Status:        string(o.Status),
				CustomerName:  o.Customer.Name,
				CustomerEmail: o.Customer.Email,
				ProductID:     it.ProductID,
				ProductName:   it.Name,
				Price:         it.Price.StringFixed(2),
				Quantity:      it.Quantity,
				Subtotal:      it.Subtotal().StringFixed(2),
				OrderTotal:    o.Total.StringFixed(2),
			})
		}
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("export: csv pedidos: %w", err)
	}
	return out, nil
}
