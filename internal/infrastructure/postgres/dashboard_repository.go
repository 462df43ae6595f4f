package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura que alimentan el dashboard.
// Todas usan COALESCE para devolver cero sobre tablas vacías.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de agregados.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// FinanceTotals devuelve la suma histórica de pagos y de gastos en una sola consulta.
func (r *DashboardRepo) FinanceTotals(ctx context.Context) (payments, expenses decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(amount) FROM payments), 0) AS total_payments,
	    COALESCE((SELECT SUM(amount) FROM expenses), 0) AS total_expenses`

	err = r.q.QueryRow(ctx, query).Scan(&payments, &expenses)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("dashboard.FinanceTotals: %w", err)
	}
	return payments, expenses, nil
}

// SumPaymentsSince suma los pagos con fecha >= from.
func (r *DashboardRepo) SumPaymentsSince(ctx context.Context, from time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE date >= $1`, from).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumPaymentsSince: %w", err)
	}
	return total, nil
}

// SumPaymentsBetween suma los pagos con from <= fecha < to.
func (r *DashboardRepo) SumPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE date >= $1 AND date < $2`, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumPaymentsBetween: %w", err)
	}
	return total, nil
}

// SumExpensesSince suma los gastos con fecha >= from. La columna es DATE:
// se compara solo la fecha, sin componente horario.
func (r *DashboardRepo) SumExpensesSince(ctx context.Context, from time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date >= $1::date`, from).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumExpensesSince: %w", err)
	}
	return total, nil
}

// SumExpensesBetween suma los gastos con from <= fecha < to (solo fecha).
func (r *DashboardRepo) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date >= $1::date AND date < $2::date`,
		from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumExpensesBetween: %w", err)
	}
	return total, nil
}

// ExpectedMonthlyRent suma monthly_rent de los contratos con estado "active".
func (r *DashboardRepo) ExpectedMonthlyRent(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(monthly_rent), 0) FROM leases WHERE status = 'active'`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.ExpectedMonthlyRent: %w", err)
	}
	return total, nil
}

// CountUnits devuelve total de unidades y cuántas están ocupadas.
// Las unidades en mantenimiento quedan en el bloque vacante (total - ocupadas).
func (r *DashboardRepo) CountUnits(ctx context.Context) (repository.UnitCounts, error) {
	const query = `
	SELECT
	    COUNT(*)                                       AS total,
	    COUNT(*) FILTER (WHERE status = 'occupied')    AS occupied
	FROM units`

	var c repository.UnitCounts
	if err := r.q.QueryRow(ctx, query).Scan(&c.Total, &c.Occupied); err != nil {
		return repository.UnitCounts{}, fmt.Errorf("dashboard.CountUnits: %w", err)
	}
	return c, nil
}

// CountProperties devuelve el total de propiedades registradas.
func (r *DashboardRepo) CountProperties(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountProperties: %w", err)
	}
	return n, nil
}

// CountExpiringLeases cuenta contratos activos con end_date <= until.
// El estado es manual: un contrato terminado no cuenta aunque su fecha venza.
func (r *DashboardRepo) CountExpiringLeases(ctx context.Context, until time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leases WHERE status = 'active' AND end_date <= $1::date`, until).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountExpiringLeases: %w", err)
	}
	return n, nil
}

// CountOverdueTenants cuenta inquilinos distintos con contrato activo y sin
// ningún pago con fecha >= monthStart. Neteo agregado, sin conciliar pagos
// contra contratos individuales.
func (r *DashboardRepo) CountOverdueTenants(ctx context.Context, monthStart time.Time) (int, error) {
	const query = `
	SELECT COUNT(DISTINCT l.tenant_id)
	FROM leases l
	WHERE l.status = 'active'
	  AND NOT EXISTS (
	      SELECT 1 FROM payments p
	      WHERE p.tenant_id = l.tenant_id AND p.date >= $1
	  )`

	var n int
	if err := r.q.QueryRow(ctx, query, monthStart).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountOverdueTenants: %w", err)
	}
	return n, nil
}

// RecentTickets devuelve los `limit` tickets más recientes (created_at desc).
func (r *DashboardRepo) RecentTickets(ctx context.Context, limit int) ([]*entity.MaintenanceTicket, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+ticketColumns+` FROM maintenance_tickets ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RecentTickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaintenanceTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("dashboard.RecentTickets scan: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// CountUrgentOpenTickets cuenta tickets con prioridad "emergency" y estado "open".
func (r *DashboardRepo) CountUrgentOpenTickets(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM maintenance_tickets WHERE priority = 'emergency' AND status = 'open'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountUrgentOpenTickets: %w", err)
	}
	return n, nil
}

// CountVisitorsBetween cuenta visitantes con from <= entry_time < to.
func (r *DashboardRepo) CountVisitorsBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM visitors WHERE entry_time >= $1 AND entry_time < $2`, from, to).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountVisitorsBetween: %w", err)
	}
	return n, nil
}

// CountCheckedInVisitors cuenta visitantes sin hora de salida registrada.
func (r *DashboardRepo) CountCheckedInVisitors(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM visitors WHERE exit_time IS NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountCheckedInVisitors: %w", err)
	}
	return n, nil
}
