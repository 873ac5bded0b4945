// Package sales contiene las reglas de cálculo de pedidos (servicio de dominio).
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizpanel-api/internal/domain/entity"
)

// OrderTotal suma precio × cantidad de cada línea.
// Es el único lugar donde se deriva Order.Total; se invoca antes de cada persistencia.
func OrderTotal(items []entity.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Recalculate actualiza o.Total a partir de sus líneas.
func Recalculate(o *entity.Order) {
	o.Total = OrderTotal(o.Items)
}

// Consistent indica si el total guardado coincide con el derivado de las líneas.
// La lectura no lo exige; sirve para diagnósticos y tests.
func Consistent(o *entity.Order) bool {
	return o.Total.Equal(OrderTotal(o.Items))
}

// Revenue suma los totales guardados de los pedidos.
func Revenue(orders []*entity.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.Total)
	}
	return sum
}
