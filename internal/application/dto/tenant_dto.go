package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTenantRequest entrada para registrar un inquilino.
type CreateTenantRequest struct {
	FirstName        string `json:"first_name" validate:"required,min=1,max=100"`
	LastName         string `json:"last_name" validate:"required,min=1,max=100"`
	IDPassportNumber string `json:"id_passport_number" validate:"required"`
	Phone            string `json:"phone"`
	Email            string `json:"email" validate:"omitempty,email"`
	EmergencyContact string `json:"emergency_contact"`
	Notes            string `json:"notes"`
	RentDueDate      string `json:"rent_due_date"` // YYYY-MM-DD, opcional
}

// UpdateTenantRequest entrada para actualizar un inquilino.
type UpdateTenantRequest struct {
	FirstName        *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName         *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email" validate:"omitempty,email"`
	EmergencyContact *string `json:"emergency_contact"`
	Status           *string `json:"status"` // active | past | blacklisted
	Notes            *string `json:"notes"`
	RentDueDate      *string `json:"rent_due_date"` // YYYY-MM-DD
}

// TenantResponse salida de un inquilino.
type TenantResponse struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	FullName         string          `json:"full_name"`
	IDPassportNumber string          `json:"id_passport_number"`
	Phone            string          `json:"phone"`
	Email            string          `json:"email"`
	EmergencyContact string          `json:"emergency_contact"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes"`
	RentDueDate      string          `json:"rent_due_date,omitempty"` // YYYY-MM-DD
	Balance          decimal.Decimal `json:"balance"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TenantListResponse lista paginada de inquilinos.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
