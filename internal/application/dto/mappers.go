package dto

import "github.com/jhoicas/bizpanel-api/internal/domain/entity"

// FromProduct mapea la entidad a su respuesta HTTP.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
	}
}

// FromCustomer mapea un cliente.
func FromCustomer(c entity.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

// FromOrder mapea un pedido. Total es el valor guardado, no se recalcula.
func FromOrder(o *entity.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		})
	}
	return OrderResponse{
		ID:        o.ID,
		Customer:  FromCustomer(o.Customer),
		Items:     items,
		ItemCount: o.ItemCount(),
		Status:    string(o.Status),
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

// FromOrders mapea una lista; nunca devuelve nil.
func FromOrders(list []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}

// FromUser mapea un usuario sin el hash de la contraseña.
func FromUser(u *entity.User) UserResponse {
	categories := u.BusinessCategories
	if categories == nil {
		categories = []string{}
	}
	return UserResponse{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		BusinessName:        u.BusinessName,
		BusinessType:        u.BusinessType,
		BusinessCategories:  categories,
		Description:         u.Description,
		Phone:               u.Phone,
		Address:             u.Address,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
