package entity

// Customer representa un cliente del directorio fijo (no editable por el usuario).
type Customer struct {
	ID    string
	Name  string
	Email string
	Phone string
}
