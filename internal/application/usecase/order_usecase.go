package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
	"github.com/jhoicas/bizpanel-api/internal/domain/sales"
	"github.com/jhoicas/bizpanel-api/internal/domain/search"
)

// OrderUseCase casos de uso de pedidos: listado con filtros, formulario, cambio de estado y borrado.
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, customers: customers, now: time.Now}
}

// Create registra un pedido. Las líneas copian nombre y precio actuales de cada producto
// y el total se calcula antes de guardar.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	items, status, err := normalizeOrderRequest(&in)
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = entity.OrderStatusNew
	}
	customer, err := uc.customer(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.snapshot(ctx, userID, items, nil)
	if err != nil {
		return nil, err
	}
	order := &entity.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Customer:  customer,
		Items:     lines,
		Status:    status,
		CreatedAt: uc.now().UTC(),
	}
	sales.Recalculate(order)
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	out := dto.FromOrder(order)
	return &out, nil
}

// Update edita cliente, líneas y opcionalmente el estado. Las líneas que ya estaban en el pedido
// conservan su nombre y precio; las nuevas copian el catálogo actual. id y createdAt no cambian.
// Devuelve (nil, nil) si el pedido no existe.
func (uc *OrderUseCase) Update(ctx context.Context, userID, id string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	items, status, err := normalizeOrderRequest(&in)
	if err != nil {
		return nil, err
	}
	order, err := uc.orders.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	customer, err := uc.customer(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.snapshot(ctx, userID, items, order.Items)
	if err != nil {
		return nil, err
	}
	order.Customer = customer
	order.Items = lines
	if status != "" {
		order.Status = status
	}
	sales.Recalculate(order)
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	out := dto.FromOrder(order)
	return &out, nil
}

// UpdateStatus cambia el estado. Cualquier estado válido es alcanzable desde cualquier otro.
// Devuelve (nil, nil) si el pedido no existe.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, userID, id, status string) (*dto.OrderResponse, error) {
	st := entity.OrderStatus(strings.TrimSpace(status))
	if !st.Valid() {
		return nil, fmt.Errorf("%w: status debe ser new, processing o completed", domain.ErrInvalidInput)
	}
	order, err := uc.orders.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	order.Status = st
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	out := dto.FromOrder(order)
	return &out, nil
}

// Delete elimina el pedido. Devuelve domain.ErrNotFound si no existe.
func (uc *OrderUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.orders.Delete(ctx, userID, id)
}

// GetByID obtiene un pedido. Devuelve (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, userID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, userID, id)
	if err != nil || order == nil {
		return nil, err
	}
	out := dto.FromOrder(order)
	return &out, nil
}

// List filtra primero por estado ("" o "all" = todos) y luego por término de búsqueda
// sobre cliente (nombre, email) y nombres de producto.
func (uc *OrderUseCase) List(ctx context.Context, userID string, f dto.OrderFilter) (*dto.OrderListResponse, error) {
	status, err := parseStatusFilter(f.Status)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	filtered := search.Orders(orders, status, search.NewQuery(f.Query))
	return &dto.OrderListResponse{Items: dto.FromOrders(filtered), Total: len(filtered)}, nil
}

func parseStatusFilter(s string) (entity.OrderStatus, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		return "", nil
	}
	st := entity.OrderStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, s)
	}
	return st, nil
}

// normalizeOrderRequest valida el formulario y fusiona líneas del mismo producto
// (se suman las cantidades, se conserva el orden de primera aparición).
// MaxLineQuantity tope de unidades por producto en un pedido, ya fusionadas las líneas repetidas.
const MaxLineQuantity = 9999

func normalizeOrderRequest(in *dto.OrderRequest) ([]dto.OrderItemRequest, entity.OrderStatus, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.CustomerID == "" {
		return nil, "", fmt.Errorf("%w: customer_id es requerido", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, "", fmt.Errorf("%w: el pedido necesita al menos un producto", domain.ErrInvalidInput)
	}
	var status entity.OrderStatus
	if s := strings.TrimSpace(in.Status); s != "" {
		status = entity.OrderStatus(s)
		if !status.Valid() {
			return nil, "", fmt.Errorf("%w: status debe ser new, processing o completed", domain.ErrInvalidInput)
		}
	}

	merged := make([]dto.OrderItemRequest, 0, len(in.Items))
	index := make(map[string]int, len(in.Items))
	for _, it := range in.Items {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" {
			return nil, "", fmt.Errorf("%w: product_id es requerido en cada línea", domain.ErrInvalidInput)
		}
		if it.Quantity < 1 || it.Quantity > MaxLineQuantity {
			return nil, "", fmt.Errorf("%w: quantity debe estar entre 1 y %d", domain.ErrInvalidInput, MaxLineQuantity)
		}
		if i, ok := index[pid]; ok {
			if merged[i].Quantity > MaxLineQuantity-it.Quantity {
				return nil, "", fmt.Errorf("%w: quantity de %s supera %d", domain.ErrInvalidInput, pid, MaxLineQuantity)
			}
			merged[i].Quantity += it.Quantity
			continue
		}
		index[pid] = len(merged)
		merged = append(merged, dto.OrderItemRequest{ProductID: pid, Quantity: it.Quantity})
	}
	return merged, status, nil
}

func (uc *OrderUseCase) customer(ctx context.Context, id string) (entity.Customer, error) {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return entity.Customer{}, err
	}
	if c == nil {
		return entity.Customer{}, fmt.Errorf("%w: cliente %s no existe", domain.ErrInvalidInput, id)
	}
	return *c, nil
}

// snapshot arma las líneas. Si el producto ya estaba en existing se reutiliza esa copia;
// si no, se copia del catálogo actual del usuario.
func (uc *OrderUseCase) snapshot(ctx context.Context, userID string, items []dto.OrderItemRequest, existing []entity.LineItem) ([]entity.LineItem, error) {
	kept := make(map[string]entity.LineItem, len(existing))
	for _, l := range existing {
		kept[l.ProductID] = l
	}

	var byID map[string]*entity.Product
	lines := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		if l, ok := kept[it.ProductID]; ok {
			l.Quantity = it.Quantity
			lines = append(lines, l)
			continue
		}
		if byID == nil {
			products, err := uc.products.ListByUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			byID = make(map[string]*entity.Product, len(products))
			for _, p := range products {
				byID[p.ID] = p
			}
		}
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: producto %s no existe", domain.ErrInvalidInput, it.ProductID)
		}
		lines = append(lines, entity.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}
