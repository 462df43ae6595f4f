package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest entrada para registrar un gasto de una propiedad.
// Date va en formato YYYY-MM-DD.
type CreateExpenseRequest struct {
	PropertyID  string          `json:"property_id" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" validate:"required"`
	Description string          `json:"description"`
	ReceiptFile string          `json:"receipt_file"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"property_id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Description string          `json:"description"`
	ReceiptFile string          `json:"receipt_file"`
}

// ExpenseListResponse lista paginada de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
