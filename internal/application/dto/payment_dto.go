package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest entrada para registrar un pago de renta.
// Date va en formato YYYY-MM-DD. ReceiptNumber es único en todo el sistema.
type CreatePaymentRequest struct {
	TenantID      string          `json:"tenant_id" validate:"required"`
	LeaseID       *string         `json:"lease_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date" validate:"required"`
	Method        string          `json:"method" validate:"required"` // cash | bank | mpesa
	ReceiptNumber string          `json:"receipt_number" validate:"required"`
	Notes         string          `json:"notes"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	LeaseID       *string         `json:"lease_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Method        string          `json:"method"`
	ReceiptNumber string          `json:"receipt_number"`
	Notes         string          `json:"notes"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PaymentPrefillResponse valores sugeridos para el formulario de nuevo pago:
// el contrato activo del inquilino y su renta mensual. LeaseID es nil si el
// inquilino no tiene contrato activo.
type PaymentPrefillResponse struct {
	TenantID string          `json:"tenant_id"`
	LeaseID  *string         `json:"lease_id,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // hoy
}
