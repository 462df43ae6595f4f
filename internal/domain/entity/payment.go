package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash  = "cash"
	PaymentMethodBank  = "bank"
	PaymentMethodMpesa = "mpesa"
)

// Payment registra un pago de renta. ReceiptNumber es único en todo el
// sistema. Un pago nunca se modifica después de creado.
type Payment struct {
	ID            string
	TenantID      string
	LeaseID       *string // opcional: el pago puede no estar atado a un contrato
	Amount        decimal.Decimal
	Date          time.Time
	Method        string // cash | bank | mpesa
	ReceiptNumber string
	Notes         string
}

// ValidPaymentMethod verifica pertenencia al enum de métodos.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodMpesa:
		return true
	}
	return false
}
