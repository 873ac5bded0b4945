package dto

import "time"

// RegisterRequest entrada del registro. Todos los campos son obligatorios.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario con su perfil de negocio (sin password).
type UserResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	BusinessName        string    `json:"business_name"`
	BusinessType        string    `json:"business_type"`
	BusinessCategories  []string  `json:"business_categories"`
	Description         string    `json:"description"`
	Phone               string    `json:"phone"`
	Address             string    `json:"address"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest entrada de la pantalla de perfil.
type UpdateProfileRequest struct {
	BusinessName       string   `json:"business_name"`
	BusinessType       string   `json:"business_type" example:"restaurant"`
	BusinessCategories []string `json:"business_categories"`
	Description        string   `json:"description"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
}

// OnboardingRequest entrada del asistente de onboarding.
type OnboardingRequest struct {
	BusinessType       string   `json:"business_type" example:"franchise"`
	BusinessName       string   `json:"business_name"`
	BusinessCategories []string `json:"business_categories"`
}
