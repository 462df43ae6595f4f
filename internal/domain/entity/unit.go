package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de unidad rentable.
const (
	UnitType1BR        = "1BR"
	UnitType2BR        = "2BR"
	UnitTypeStudio     = "studio"
	UnitTypeCommercial = "commercial"
)

// Estados de una unidad. "maintenance" no cuenta como ocupada para el dashboard.
const (
	UnitStatusOccupied    = "occupied"
	UnitStatusVacant      = "vacant"
	UnitStatusMaintenance = "maintenance"
)

// Unit representa una unidad rentable dentro de una propiedad.
// (property_id, unit_number) es único. El estado pasa a "occupied" al crear
// un contrato de arrendamiento sobre ella; los demás cambios son manuales.
type Unit struct {
	ID               string
	PropertyID       string
	UnitNumber       string
	UnitType         string          // 1BR | 2BR | studio | commercial
	RentAmount       decimal.Decimal // renta mensual de referencia
	DepositAmount    decimal.Decimal
	Status           string // occupied | vacant | maintenance
	WaterMeter       string
	ElectricityMeter string
	CreatedAt        time.Time
}

// ValidUnitType verifica pertenencia al enum de tipos.
func ValidUnitType(t string) bool {
	switch t {
	case UnitType1BR, UnitType2BR, UnitTypeStudio, UnitTypeCommercial:
		return true
	}
	return false
}

// ValidUnitStatus verifica pertenencia al enum de estados.
func ValidUnitStatus(s string) bool {
	switch s {
	case UnitStatusOccupied, UnitStatusVacant, UnitStatusMaintenance:
		return true
	}
	return false
}
