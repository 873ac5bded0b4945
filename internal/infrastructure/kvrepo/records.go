package kvrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// Documentos persistidos. Los nombres de campo (camelCase) forman el formato guardado.

type productDoc struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
	UserID      string          `json:"userId"`
}

type customerDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type lineItemDoc struct {
	ID       string          `json:"id"` // id del producto
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type orderDoc struct {
	ID        string          `json:"id"`
	Customer  customerDoc     `json:"customer"`
	Products  []lineItemDoc   `json:"products"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	UserID    string          `json:"userId"`
}

type userDoc struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"passwordHash"`
	BusinessName        string    `json:"businessName,omitempty"`
	BusinessType        string    `json:"businessType,omitempty"`
	BusinessCategories  []string  `json:"businessCategories,omitempty"`
	Description         string    `json:"description,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	Address             string    `json:"address,omitempty"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toProductDoc(p *entity.Product) productDoc {
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UserID:      p.UserID,
	}
}

func (d productDoc) entity() *entity.Product {
	return &entity.Product{
		ID:          d.ID,
		UserID:      d.UserID,
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		CreatedAt:   d.CreatedAt,
	}
}

func toCustomerDoc(c entity.Customer) customerDoc {
	return customerDoc{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func (d customerDoc) entity() entity.Customer {
	return entity.Customer{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone}
}

func toOrderDoc(o *entity.Order) orderDoc {
	lines := make([]lineItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, lineItemDoc{ID: it.ProductID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	return orderDoc{
		ID:        o.ID,
		Customer:  toCustomerDoc(o.Customer),
		Products:  lines,
		Status:    string(o.Status),
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		UserID:    o.UserID,
	}
}

// entity no recalcula Total: el valor guardado se devuelve tal cual.
func (d orderDoc) entity() *entity.Order {
	items := make([]entity.LineItem, 0, len(d.Products))
	for _, l := range d.Products {
		items = append(items, entity.LineItem{ProductID: l.ID, Name: l.Name, Price: l.Price, Quantity: l.Quantity})
	}
	return &entity.Order{
		ID:        d.ID,
		UserID:    d.UserID,
		Customer:  d.Customer.entity(),
		Items:     items,
		Status:    entity.OrderStatus(d.Status),
		Total:     d.Total,
		CreatedAt: d.CreatedAt,
	}
}

func toUserDoc(u *entity.User) userDoc {
	return userDoc{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		BusinessName:        u.BusinessName,
		BusinessType:        u.BusinessType,
		BusinessCategories:  u.BusinessCategories,
		Description:         u.Description,
		Phone:               u.Phone,
		Address:             u.Address,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (d userDoc) entity() *entity.User {
	return &entity.User{
		ID:                  d.ID,
		Name:                d.Name,
		Email:               d.Email,
		PasswordHash:        d.PasswordHash,
		BusinessName:        d.BusinessName,
		BusinessType:        d.BusinessType,
		BusinessCategories:  d.BusinessCategories,
		Description:         d.Description,
		Phone:               d.Phone,
		Address:             d.Address,
		OnboardingCompleted: d.OnboardingCompleted,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}
