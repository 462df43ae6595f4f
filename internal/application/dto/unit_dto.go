package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUnitRequest entrada para registrar una unidad dentro de una propiedad.
type CreateUnitRequest struct {
	PropertyID       string          `json:"property_id" validate:"required"`
	UnitNumber       string          `json:"unit_number" validate:"required,min=1,max=50"`
	UnitType         string          `json:"unit_type" validate:"required"` // 1BR | 2BR | studio | commercial
	RentAmount       decimal.Decimal `json:"rent_amount"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	WaterMeter       string          `json:"water_meter"`
	ElectricityMeter string          `json:"electricity_meter"`
}

// UpdateUnitRequest entrada para actualizar una unidad.
type UpdateUnitRequest struct {
	UnitNumber       *string          `json:"unit_number" validate:"omitempty,min=1,max=50"`
	UnitType         *string          `json:"unit_type"`
	RentAmount       *decimal.Decimal `json:"rent_amount"`
	DepositAmount    *decimal.Decimal `json:"deposit_amount"`
	Status           *string          `json:"status"` // occupied | vacant | maintenance
	WaterMeter       *string          `json:"water_meter"`
	ElectricityMeter *string          `json:"electricity_meter"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID               string          `json:"id"`
	PropertyID       string          `json:"property_id"`
	UnitNumber       string          `json:"unit_number"`
	UnitType         string          `json:"unit_type"`
	RentAmount       decimal.Decimal `json:"rent_amount"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	Status           string          `json:"status"`
	WaterMeter       string          `json:"water_meter"`
	ElectricityMeter string          `json:"electricity_meter"`
	CreatedAt        time.Time       `json:"created_at"`
}

// UnitListResponse lista paginada de unidades.
type UnitListResponse struct {
	Items []UnitResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
