package dto

// ExportFile archivo generado para descarga.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
	ETag        string // vacío si el formato no lo calcula
}
