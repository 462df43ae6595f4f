package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UnitCounts conteo de unidades para la tasa de ocupación.
// Las unidades en mantenimiento no cuentan como ocupadas: quedan dentro del
// bloque de vacantes (total - ocupadas), comportamiento heredado a propósito.
type UnitCounts struct {
	Total    int
	Occupied int
}

// DashboardRepository define las consultas de lectura que alimentan el
// dashboard. Las implementaciones son read-only (no modifican datos) y
// devuelven cero cuando no hay filas (COALESCE), nunca error por tabla vacía.
type DashboardRepository interface {
	// FinanceTotals devuelve la suma histórica de pagos y de gastos.
	FinanceTotals(ctx context.Context) (payments, expenses decimal.Decimal, err error)

	// SumPaymentsSince suma los pagos con fecha >= from.
	SumPaymentsSince(ctx context.Context, from time.Time) (decimal.Decimal, error)

	// SumPaymentsBetween suma los pagos con from <= fecha < to.
	SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumExpensesSince suma los gastos con fecha >= from. La columna es DATE:
	// la comparación es solo por fecha, sin componente horario.
	SumExpensesSince(ctx context.Context, from time.Time) (decimal.Decimal, error)

	// SumExpensesBetween suma los gastos con from <= fecha < to (solo fecha).
	SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// ExpectedMonthlyRent suma monthly_rent de los contratos con estado "active".
	ExpectedMonthlyRent(ctx context.Context) (decimal.Decimal, error)

	// CountUnits devuelve total de unidades y cuántas están ocupadas.
	CountUnits(ctx context.Context) (UnitCounts, error)

	// CountProperties devuelve el total de propiedades registradas.
	CountProperties(ctx context.Context) (int, error)

	// CountExpiringLeases cuenta contratos activos con end_date <= until.
	CountExpiringLeases(ctx context.Context, until time.Time) (int, error)

	// CountOverdueTenants cuenta inquilinos distintos con contrato activo y
	// sin ningún pago con fecha >= monthStart. Aproximación agregada: no
	// concilia pagos contra contratos individuales.
	CountOverdueTenants(ctx context.Context, monthStart time.Time) (int, error)

	// RecentTickets devuelve los `limit` tickets más recientes (created_at desc).
	RecentTickets(ctx context.Context, limit int) ([]*entity.MaintenanceTicket, error)

	// CountUrgentOpenTickets cuenta tickets con prioridad "emergency" y estado "open".
	CountUrgentOpenTickets(ctx context.Context) (int, error)

	// CountVisitorsBetween cuenta visitantes con from <= entry_time < to.
	CountVisitorsBetween(ctx context.Context, from, to time.Time) (int, error)

	// CountCheckedInVisitors cuenta visitantes sin hora de salida registrada.
	CountCheckedInVisitors(ctx context.Context) (int, error)
}
