package entity

import "time"

// Estados de una propiedad.
const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"
)

// Property representa un inmueble administrado (edificio, plaza o conjunto).
// Agrupa unidades rentables; al eliminarla se eliminan sus unidades en cascada (FK).
type Property struct {
	ID          string
	Name        string
	Address     string
	Description string
	OwnerID     string // users.id del propietario que la registró
	Status      string // active | inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
