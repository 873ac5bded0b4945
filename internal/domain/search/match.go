// Package search implementa el filtro de texto de los listados: búsqueda lineal,
// subcadena, sin distinguir mayúsculas (plegado Unicode, "AÇAÍ" coincide con "açaí").
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// Query término normalizado. El valor cero (término vacío) coincide con todo.
type Query struct {
	folded string
}

// NewQuery normaliza el término: recorta espacios y pliega mayúsculas.
func NewQuery(term string) Query {
	term = strings.TrimSpace(term)
	if term == "" {
		return Query{}
	}
	return Query{folded: fold(term)}
}

// Empty indica que no hay término de búsqueda.
func (q Query) Empty() bool { return q.folded == "" }

// Contains indica si s contiene el término.
func (q Query) Contains(s string) bool {
	if q.Empty() {
		return true
	}
	return strings.Contains(fold(s), q.folded)
}

// MatchProduct busca en nombre o categoría.
func (q Query) MatchProduct(p *entity.Product) bool {
	return q.Contains(p.Name) || q.Contains(p.Category)
}

// MatchOrder busca en nombre o email del cliente, o en el nombre de cualquier línea.
func (q Query) MatchOrder(o *entity.Order) bool {
	if q.Contains(o.Customer.Name) || q.Contains(o.Customer.Email) {
		return true
	}
	for _, it := range o.Items {
		if q.Contains(it.Name) {
			return true
		}
	}
	return false
}

// Products filtra productos. Nunca devuelve nil.
func Products(list []*entity.Product, q Query) []*entity.Product {
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if q.MatchProduct(p) {
			out = append(out, p)
		}
	}
	return out
}

// Orders filtra pedidos por estado (vacío = todos) y luego por término. Nunca devuelve nil.
func Orders(list []*entity.Order, status entity.OrderStatus, q Query) []*entity.Order {
	out := make([]*entity.Order, 0, len(list))
	for _, o := range list {
		if status != "" && o.Status != status {
			continue
		}
		if q.MatchOrder(o) {
			out = append(out, o)
		}
	}
	return out
}

// cases.Caser no es seguro para uso concurrente; se crea uno por llamada.
func fold(s string) string {
	return cases.Fold().String(s)
}
