package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense registra un gasto de una propiedad (reparaciones, seguridad, etc.).
// Date es solo fecha, sin componente horario.
type Expense struct {
	ID          string
	PropertyID  string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time // solo fecha
	Description string
	ReceiptFile string // referencia opaca al comprobante
}
