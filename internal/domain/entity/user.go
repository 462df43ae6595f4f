package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin   = "admin"   // acceso total
	RoleManager = "manager" // gestión operativa de propiedades
	RoleGuard   = "guard"   // solo registro de visitantes en portería
)

// User usuario de la aplicación (propietarios/administradores y guardias).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | manager | guard
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
