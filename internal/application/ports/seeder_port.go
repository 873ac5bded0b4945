package ports

import "context"

// DataSeeder define el puerto para la siembra perezosa de datos de ejemplo.
// La implementación (seed.Seeder) solo escribe colecciones que aún no existen,
// así que invocarlo en cada visita es seguro.
type DataSeeder interface {
	// EnsureCustomers crea el directorio de clientes compartido si no existe.
	EnsureCustomers(ctx context.Context) error
	// EnsureUserData crea productos y pedidos de ejemplo del usuario si no existen.
	EnsureUserData(ctx context.Context, userID string) error
}
