package dto

import "time"

// CreateTicketRequest entrada para abrir un ticket de mantenimiento.
type CreateTicketRequest struct {
	UnitID      string  `json:"unit_id" validate:"required"`
	TenantID    *string `json:"tenant_id"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Priority    string  `json:"priority"` // low | medium | high | emergency; medium por defecto
}

// UpdateTicketRequest entrada para actualizar un ticket (PATCH parcial).
type UpdateTicketRequest struct {
	Category           *string `json:"category"`
	Description        *string `json:"description"`
	Priority           *string `json:"priority"`
	Status             *string `json:"status"` // open | in_progress | resolved | closed
	AssignedTechnician *string `json:"assigned_technician"`
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID                 string    `json:"id"`
	UnitID             string    `json:"unit_id"`
	TenantID           *string   `json:"tenant_id,omitempty"`
	Category           string    `json:"category"`
	Description        string    `json:"description"`
	Priority           string    `json:"priority"`
	Status             string    `json:"status"`
	AssignedTechnician string    `json:"assigned_technician"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TicketListResponse lista paginada de tickets.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
