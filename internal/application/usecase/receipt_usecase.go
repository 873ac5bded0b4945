package usecase

import (
	"context"

	"github.com/jhoicas/bizpanel-api/internal/application/ports"
	"github.com/jhoicas/bizpanel-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de un pedido.
type ReceiptUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	renderer ports.ReceiptRenderer
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orders repository.OrderRepository, users repository.UserRepository, renderer ports.ReceiptRenderer) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, users: users, renderer: renderer}
}

// Render devuelve el PDF del pedido. Devuelve (nil, nil) si el pedido no existe.
func (uc *ReceiptUseCase) Render(ctx context.Context, userID, orderID string) ([]byte, error) {
	order, err := uc.orders.GetByID(ctx, userID, orderID)
	if err != nil || order == nil {
		return nil, err
	}
	business, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.renderer.Render(order, business)
}
