package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un contrato. El estado es manual: el aggregator calcula los
// contratos por vencer solo para mostrarlos, nunca escribe el estado.
const (
	LeaseStatusActive     = "active"
	LeaseStatusExpiring   = "expiring"
	LeaseStatusTerminated = "terminated"
)

// Lease vincula un inquilino con una unidad por un período y una renta mensual.
// Su creación marca la unidad como ocupada dentro de la misma transacción.
type Lease struct {
	ID               string
	TenantID         string
	UnitID           string
	StartDate        time.Time // solo fecha
	EndDate          time.Time // solo fecha
	MonthlyRent      decimal.Decimal
	DepositAmount    decimal.Decimal
	PaymentFrequency string // "monthly" por defecto
	AgreementFile    string // referencia opaca al documento, sin manejo de archivos
	Status           string // active | expiring | terminated
	CreatedAt        time.Time
}

// ValidLeaseStatus verifica pertenencia al enum de estados.
func ValidLeaseStatus(s string) bool {
	switch s {
	case LeaseStatusActive, LeaseStatusExpiring, LeaseStatusTerminated:
		return true
	}
	return false
}
