package dto

import "time"

// CreatePropertyRequest entrada para registrar una propiedad.
type CreatePropertyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description"`
}

// UpdatePropertyRequest entrada para actualizar una propiedad.
type UpdatePropertyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Status      *string `json:"status"` // active | inactive
}

// PropertyResponse salida de una propiedad.
type PropertyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PropertyListResponse lista paginada de propiedades.
type PropertyListResponse struct {
	Items []PropertyResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
