package entity

import "time"

// Tipos de negocio (solo clasificación cosmética).
const (
	BusinessFranchise  = "franchise"
	BusinessRestaurant = "restaurant"
	BusinessAutonomous = "autonomous"
)

// ValidBusinessType indica si t es uno de los tipos de negocio conocidos.
func ValidBusinessType(t string) bool {
	switch t {
	case BusinessFranchise, BusinessRestaurant, BusinessAutonomous:
		return true
	}
	return false
}

// User dueño de un panel: credenciales más el perfil del negocio.
type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string // bcrypt
	BusinessName        string
	BusinessType        string // franchise, restaurant, autonomous ("" hasta el onboarding)
	BusinessCategories  []string
	Description         string
	Phone               string
	Address             string
	OnboardingCompleted bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
