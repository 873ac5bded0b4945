package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/domain/catalog"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
	"github.com/jhoicas/bizpanel-api/internal/domain/search"
)

// ProductUseCase casos de uso del catálogo del usuario (listado, formulario, borrado).
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create da de alta un producto. Sin imagen se asigna la imagen por defecto.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price.Value,
		Image:       in.Image,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID obtiene un producto del usuario. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Update reemplaza los campos editables. id, createdAt y dueño se conservan.
// Los pedidos existentes no se modifican. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = in.Name
	product.Category = in.Category
	product.Description = in.Description
	product.Price = in.Price.Value
	product.Image = in.Image
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Delete elimina el producto. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, userID, id)
}

// List devuelve los productos del usuario filtrados por nombre o categoría.
func (uc *ProductUseCase) List(ctx context.Context, userID, q string) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	filtered := search.Products(products, search.NewQuery(q))
	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Categories devuelve las categorías sugeridas del catálogo.
func (uc *ProductUseCase) Categories() dto.CategoryListResponse {
	items := make([]string, len(catalog.Categories))
	copy(items, catalog.Categories)
	return dto.CategoryListResponse{Items: items}
}

// Límites del precio. El exponente se revisa antes de comparar: decimal expande 1e999999999 al operar.
const (
	minPriceExponent = -10
	maxPriceExponent = 12
)

// maxPrice cota superior (exclusiva) de un precio de catálogo.
var maxPrice = decimal.New(1, 12)

// validateProduct normaliza la entrada y exige nombre, categoría y precio dentro de [0, maxPrice).
func validateProduct(in *dto.ProductRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)

	if in.Name == "" || in.Category == "" || !in.Price.Set {
		return fmt.Errorf("%w: name, category y price son requeridos", domain.ErrInvalidInput)
	}
	if exp := in.Price.Value.Exponent(); exp < minPriceExponent || exp > maxPriceExponent {
		return fmt.Errorf("%w: price fuera de rango", domain.ErrInvalidInput)
	}
	if in.Price.Value.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Price.Value.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: price debe ser menor que %s", domain.ErrInvalidInput, maxPrice)
	}
	if in.Image == "" {
		in.Image = catalog.DefaultImage()
	}
	return nil
}
