package dto

// CustomerResponse cliente del directorio.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerListResponse directorio completo de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
}
