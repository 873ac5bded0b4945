package ports

import "github.com/jhoicas/bizpanel-api/internal/domain/entity"

// ReceiptRenderer define el puerto de salida para generar el comprobante de un pedido.
// El adaptador por defecto usa maroto (infrastructure/pdf).
type ReceiptRenderer interface {
	// Render devuelve el documento listo para descargar (application/pdf).
	Render(order *entity.Order, business *entity.User) ([]byte, error)
}
