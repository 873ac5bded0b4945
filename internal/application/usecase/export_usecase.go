package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/application/export"
	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatCSV = "csv"
	FormatXML = "xml"
)

// ExportUseCase exportación del catálogo y de los pedidos del usuario.
type ExportUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(products repository.ProductRepository, orders repository.OrderRepository) *ExportUseCase {
	return &ExportUseCase{products: products, orders: orders}
}

// Products exporta el catálogo. Solo CSV.
func (uc *ExportUseCase) Products(ctx context.Context, userID, format string) (*dto.ExportFile, error) {
	format = normalizeFormat(format)
	if format != FormatCSV {
		return nil, fmt.Errorf("%w: formato %q no soportado para productos", domain.ErrInvalidInput, format)
	}
	products, err := uc.products.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	body, err := export.ProductsCSV(products)
	if err != nil {
		return nil, err
	}
	return &dto.ExportFile{Filename: "productos.csv", ContentType: "text/csv; charset=utf-8", Body: body}, nil
}

// Orders exporta los pedidos en CSV (una fila por línea) o XML canónico con ETag.
func (uc *ExportUseCase) Orders(ctx context.Context, userID, format string) (*dto.ExportFile, error) {
	format = normalizeFormat(format)
	if format != FormatCSV && format != FormatXML {
		return nil, fmt.Errorf("%w: formato %q no soportado para pedidos", domain.ErrInvalidInput, format)
	}
	orders, err := uc.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if format == FormatXML {
		doc, err := export.OrdersXML(orders)
		if err != nil {
			return nil, err
		}
		return &dto.ExportFile{Filename: "pedidos.xml", ContentType: "application/xml; charset=utf-8", Body: doc.Body, ETag: doc.ETag}, nil
	}
	body, err := export.OrdersCSV(orders)
	if err != nil {
		return nil, err
	}
	return &dto.ExportFile{Filename: "pedidos.csv", ContentType: "text/csv; charset=utf-8", Body: body}, nil
}

func normalizeFormat(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	if f == "" {
		return FormatCSV
	}
	return f
}
