package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeaseRequest entrada para crear un contrato de arrendamiento.
// Las fechas van en formato YYYY-MM-DD.
type CreateLeaseRequest struct {
	TenantID         string          `json:"tenant_id" validate:"required"`
	UnitID           string          `json:"unit_id" validate:"required"`
	StartDate        string          `json:"start_date" validate:"required"`
	EndDate          string          `json:"end_date" validate:"required"`
	MonthlyRent      decimal.Decimal `json:"monthly_rent"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	PaymentFrequency string          `json:"payment_frequency"` // "monthly" por defecto
	AgreementFile    string          `json:"agreement_file"`
}

// UpdateLeaseRequest entrada para actualizar un contrato.
type UpdateLeaseRequest struct {
	StartDate        *string          `json:"start_date"` // YYYY-MM-DD
	EndDate          *string          `json:"end_date"`   // YYYY-MM-DD
	MonthlyRent      *decimal.Decimal `json:"monthly_rent"`
	DepositAmount    *decimal.Decimal `json:"deposit_amount"`
	PaymentFrequency *string          `json:"payment_frequency"`
	AgreementFile    *string          `json:"agreement_file"`
	Status           *string          `json:"status"` // active | expiring | terminated
}

// LeaseResponse salida de un contrato.
type LeaseResponse struct {
	ID               string          `json:"id"`
	TenantID         string          `json:"tenant_id"`
	UnitID           string          `json:"unit_id"`
	StartDate        string          `json:"start_date"` // YYYY-MM-DD
	EndDate          string          `json:"end_date"`   // YYYY-MM-DD
	MonthlyRent      decimal.Decimal `json:"monthly_rent"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	PaymentFrequency string          `json:"payment_frequency"`
	AgreementFile    string          `json:"agreement_file"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// LeaseListResponse lista paginada de contratos.
type LeaseListResponse struct {
	Items []LeaseResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// LeasePrefillResponse valores sugeridos para el formulario de nuevo contrato
// a partir de la unidad elegida (renta y depósito de referencia de la unidad).
type LeasePrefillResponse struct {
	UnitID        string          `json:"unit_id"`
	UnitNumber    string          `json:"unit_number"`
	PropertyID    string          `json:"property_id"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	StartDate     string          `json:"start_date"` // hoy
	EndDate       string          `json:"end_date"`   // hoy + 1 año
}
