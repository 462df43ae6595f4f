// Package analytics contiene el caso de uso del dashboard: el resumen
// financiero, de ocupación y de portería calculado sobre el estado actual.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const dashboardRecentTickets = 5 // tickets en el widget del dashboard

// leaseExpiryWindow ventana de aviso de vencimiento de contratos.
const leaseExpiryWindow = 30 * 24 * time.Hour

// DashboardUseCase calcula el snapshot del dashboard.
//
// Función determinista del contenido del almacén más el instante `now` que
// recibe: no muta nada ni guarda estado. Todas las consultas van por
// DashboardRepository (read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Snapshot construye el DashboardSnapshotDTO para el instante dado.
//
// Límites de mes: current_month_start es el primer instante del mes de `now`;
// el mes anterior va de prev_month_start a current_month_start (exclusivo).
// Las consultas se reparten en goroutines por grupo de métricas.
func (uc *DashboardUseCase) Snapshot(ctx context.Context, now time.Time) (*dto.DashboardSnapshotDTO, error) {
	currMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := currMonthStart.AddDate(0, -1, 0)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	expiryLimit := now.Add(leaseExpiryWindow)

	type financeResult struct {
		payments decimal.Decimal
		expenses decimal.Decimal
		err      error
	}
	type monthsResult struct {
		currRevenue  decimal.Decimal
		prevRevenue  decimal.Decimal
		currExpenses decimal.Decimal
		prevExpenses decimal.Decimal
		expectedRent decimal.Decimal
		err          error
	}
	type occupancyResult struct {
		units      repository.UnitCounts
		properties int
		err        error
	}
	type leasesResult struct {
		expiring int
		overdue  int
		err      error
	}
	type ticketsResult struct {
		recent []*entity.MaintenanceTicket
		urgent int
		err    error
	}
	type visitorsResult struct {
		today     int
		checkedIn int
		err       error
	}

	financeCh := make(chan financeResult, 1)
	monthsCh := make(chan monthsResult, 1)
	occupancyCh := make(chan occupancyResult, 1)
	leasesCh := make(chan leasesResult, 1)
	ticketsCh := make(chan ticketsResult, 1)
	visitorsCh := make(chan visitorsResult, 1)

	go func() {
		payments, expenses, err := uc.repo.FinanceTotals(ctx)
		financeCh <- financeResult{payments, expenses, err}
	}()
	go func() {
		var r monthsResult
		r.currRevenue, r.err = uc.repo.SumPaymentsSince(ctx, currMonthStart)
		if r.err == nil {
			r.prevRevenue, r.err = uc.repo.SumPaymentsBetween(ctx, prevMonthStart, currMonthStart)
		}
		if r.err == nil {
			r.currExpenses, r.err = uc.repo.SumExpensesSince(ctx, currMonthStart)
		}
		if r.err == nil {
			r.prevExpenses, r.err = uc.repo.SumExpensesBetween(ctx, prevMonthStart, currMonthStart)
		}
		if r.err == nil {
			r.expectedRent, r.err = uc.repo.ExpectedMonthlyRent(ctx)
		}
		monthsCh <- r
	}()
	go func() {
		var r occupancyResult
		r.units, r.err = uc.repo.CountUnits(ctx)
		if r.err == nil {
			r.properties, r.err = uc.repo.CountProperties(ctx)
		}
		occupancyCh <- r
	}()
	go func() {
		var r leasesResult
		r.expiring, r.err = uc.repo.CountExpiringLeases(ctx, expiryLimit)
		if r.err == nil {
			r.overdue, r.err = uc.repo.CountOverdueTenants(ctx, currMonthStart)
		}
		leasesCh <- r
	}()
	go func() {
		var r ticketsResult
		r.recent, r.err = uc.repo.RecentTickets(ctx, dashboardRecentTickets)
		if r.err == nil {
			r.urgent, r.err = uc.repo.CountUrgentOpenTickets(ctx)
		}
		ticketsCh <- r
	}()
	go func() {
		var r visitorsResult
		r.today, r.err = uc.repo.CountVisitorsBetween(ctx, todayStart, tomorrowStart)
		if r.err == nil {
			r.checkedIn, r.err = uc.repo.CountCheckedInVisitors(ctx)
		}
		visitorsCh <- r
	}()

	finance := <-financeCh
	months := <-monthsCh
	occupancy := <-occupancyCh
	leases := <-leasesCh
	tickets := <-ticketsCh
	visitors := <-visitorsCh

	if finance.err != nil {
		return nil, fmt.Errorf("dashboard: totales financieros: %w", finance.err)
	}
	if months.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", months.err)
	}
	if occupancy.err != nil {
		return nil, fmt.Errorf("dashboard: ocupación: %w", occupancy.err)
	}
	if leases.err != nil {
		return nil, fmt.Errorf("dashboard: contratos: %w", leases.err)
	}
	if tickets.err != nil {
		return nil, fmt.Errorf("dashboard: mantenimiento: %w", tickets.err)
	}
	if visitors.err != nil {
		return nil, fmt.Errorf("dashboard: portería: %w", visitors.err)
	}

	// ── Derivados financieros ──────────────────────────────────────────────────
	netIncome := finance.payments.Sub(finance.expenses)
	currNetProfit := months.currRevenue.Sub(months.currExpenses)
	prevNetProfit := months.prevRevenue.Sub(months.prevExpenses)
	profitTrend := computeProfitTrend(currNetProfit, prevNetProfit)

	outstandingRent := months.expectedRent.Sub(months.currRevenue)
	if outstandingRent.IsNegative() {
		outstandingRent = decimal.Zero
	}

	// ── Ocupación ──────────────────────────────────────────────────────────────
	occupancyRate := decimal.Zero
	if occupancy.units.Total > 0 {
		occupancyRate = decimal.NewFromInt(int64(occupancy.units.Occupied)).
			Div(decimal.NewFromInt(int64(occupancy.units.Total))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	recent := make([]dto.TicketSummaryDTO, 0, len(tickets.recent))
	for _, t := range tickets.recent {
		recent = append(recent, dto.TicketSummaryDTO{
			ID:          t.ID,
			UnitID:      t.UnitID,
			Category:    t.Category,
			Description: t.Description,
			Priority:    t.Priority,
			Status:      t.Status,
			CreatedAt:   t.CreatedAt,
		})
	}

	return &dto.DashboardSnapshotDTO{
		TotalRevenue:         finance.payments,
		TotalExpenses:        finance.expenses,
		NetIncome:            netIncome,
		CurrentMonthRevenue:  months.currRevenue,
		CurrentMonthExpenses: months.currExpenses,
		ProfitTrend:          profitTrend,
		OutstandingRent:      outstandingRent,
		ExpectedMonthlyRent:  months.expectedRent,
		TotalProperties:      occupancy.properties,
		TotalUnits:           occupancy.units.Total,
		OccupiedUnits:        occupancy.units.Occupied,
		VacantUnits:          occupancy.units.Total - occupancy.units.Occupied,
		OccupancyRate:        occupancyRate,
		ExpiringLeases:       leases.expiring,
		OverdueTenants:       leases.overdue,
		RecentTickets:        recent,
		UrgentTickets:        tickets.urgent,
		VisitorsToday:        visitors.today,
		CurrentlyCheckedIn:   visitors.checkedIn,
		DateLabel:            monthLabel(now),
	}, nil
}

// computeProfitTrend variación porcentual del beneficio neto mensual contra el
// mes anterior, a un decimal. Con mes anterior en cero o negativo no hay base
// de comparación: 100 si este mes es positivo, 0 en el resto de los casos.
func computeProfitTrend(curr, prev decimal.Decimal) decimal.Decimal {
	switch {
	case prev.IsPositive():
		return curr.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
	case curr.IsPositive():
		return decimal.NewFromInt(100)
	default:
		return decimal.Zero
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
