package kvrepo

import (
	"context"
	"fmt"

	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre la clave products_<userId>.
type ProductRepo struct {
	store kvstore.Store
	locks *keyedMutex
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store kvstore.Store) *ProductRepo {
	return &ProductRepo{store: store, locks: newKeyedMutex()}
}

// ListByUser devuelve los productos en el orden guardado (orden de alta).
func (r *ProductRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Product, error) {
	docs, _, err := loadList[productDoc](ctx, r.store, productsKey(userID))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, nil
}

// GetByID obtiene un producto del usuario por ID.
func (r *ProductRepo) GetByID(ctx context.Context, userID, id string) (*entity.Product, error) {
	docs, _, err := loadList[productDoc](ctx, r.store, productsKey(userID))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	for _, d := range docs {
		if d.ID == id {
			return d.entity(), nil
		}
	}
	return nil, nil
}

// Create agrega el producto al final de la colección.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	key := productsKey(product.UserID)
	defer r.locks.lock(key)()

	docs, _, err := loadList[productDoc](ctx, r.store, key)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	docs = append(docs, toProductDoc(product))
	if err := saveList(ctx, r.store, key, docs); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update reemplaza el producto con el mismo ID conservando su posición.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	key := productsKey(product.UserID)
	defer r.locks.lock(key)()

	docs, _, err := loadList[productDoc](ctx, r.store, key)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	idx := -1
	for i, d := range docs {
		if d.ID == product.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	docs[idx] = toProductDoc(product)
	if err := saveList(ctx, r.store, key, docs); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina el producto. Los pedidos que lo incluyen no se modifican.
func (r *ProductRepo) Delete(ctx context.Context, userID, id string) error {
	key := productsKey(userID)
	defer r.locks.lock(key)()

	docs, _, err := loadList[productDoc](ctx, r.store, key)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	kept := docs[:0]
	for _, d := range docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(docs) {
		return domain.ErrNotFound
	}
	if err := saveList(ctx, r.store, key, kept); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) Initialized(ctx context.Context, userID string) (bool, error) {
	return r.store.Exists(ctx, productsKey(userID))
}

func (r *ProductRepo) SaveAllIfAbsent(ctx context.Context, userID string, products []*entity.Product) (bool, error) {
	key := productsKey(userID)
	defer r.locks.lock(key)()

	ok, err := r.store.Exists(ctx, key)
	if err != nil || ok {
		return false, err
	}
	docs := make([]productDoc, 0, len(products))
	for _, p := range products {
		docs = append(docs, toProductDoc(p))
	}
	if err := saveList(ctx, r.store, key, docs); err != nil {
		return false, fmt.Errorf("seed products: %w", err)
	}
	return true, nil
}
