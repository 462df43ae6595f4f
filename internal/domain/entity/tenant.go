package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un inquilino. No hay transiciones automáticas: se fijan a mano.
const (
	TenantStatusActive      = "active"
	TenantStatusPast        = "past"
	TenantStatusBlacklisted = "blacklisted"
)

// Tenant representa un inquilino. IDPassportNumber es único en todo el sistema.
type Tenant struct {
	ID               string
	FirstName        string
	LastName         string
	IDPassportNumber string // cédula o pasaporte, único
	Phone            string
	Email            string
	EmergencyContact string
	Status           string // active | past | blacklisted
	Notes            string
	RentDueDate      *time.Time      // día de corte de renta, opcional
	Balance          decimal.Decimal // saldo corriente informativo
	CreatedAt        time.Time
}

// FullName nombre para listados y el recibo PDF.
func (t Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

// ValidTenantStatus verifica pertenencia al enum de estados.
func ValidTenantStatus(s string) bool {
	switch s {
	case TenantStatusActive, TenantStatusPast, TenantStatusBlacklisted:
		return true
	}
	return false
}
