// Package catalog define los valores de referencia del catálogo: categorías sugeridas
// e imágenes de ejemplo para productos sin imagen.
package catalog

// Categories categorías sugeridas en formularios y usadas por el generador de datos de ejemplo.
var Categories = []string{
	"Comida",
	"Bebidas",
	"Productos Físicos",
	"Servicios",
	"Digital",
	"Otro",
}

// SampleImages imágenes de ejemplo. La primera es la imagen por defecto.
var SampleImages = []string{
	"https://images.unsplash.com/photo-1581235720704-06d3acfcb36f?w=500&h=500&fit=crop",
	"https://images.unsplash.com/photo-1600185365926-3a2ce3cdb9eb?w=500&h=500&fit=crop",
	"https://images.unsplash.com/photo-1615485290382-441e4d049cb5?w=500&h=500&fit=crop",
	"https://images.unsplash.com/photo-1547949003-9792a18a2601?w=500&h=500&fit=crop",
	"https://images.unsplash.com/photo-1583394838336-acd977736f90?w=500&h=500&fit=crop",
}

// DefaultImage devuelve la imagen que se asigna cuando el formulario no trae ninguna.
func DefaultImage() string {
	return SampleImages[0]
}
