package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/application/analytics"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de dashboard sobre slices en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fixPayment struct {
	tenantID string
	amount   decimal.Decimal
	date     time.Time
}

type fixExpense struct {
	amount decimal.Decimal
	date   time.Time
}

type fixLease struct {
	tenantID    string
	monthlyRent decimal.Decimal
	status      string
	endDate     time.Time
}

type fixVisitor struct {
	entryTime time.Time
	exitTime  *time.Time
}

// fakeDashboardRepo implementa DashboardRepository contando sobre fixtures.
type fakeDashboardRepo struct {
	payments     []fixPayment
	expenses     []fixExpense
	leases       []fixLease
	unitStatuses []string
	properties   int
	tickets      []*entity.MaintenanceTicket
	visitors     []fixVisitor
}

var _ repository.DashboardRepository = (*fakeDashboardRepo)(nil)

func (f *fakeDashboardRepo) FinanceTotals(context.Context) (decimal.Decimal, decimal.Decimal, error) {
	payments, expenses := decimal.Zero, decimal.Zero
	for _, p := range f.payments {
		payments = payments.Add(p.amount)
	}
	for _, e := range f.expenses {
		expenses = expenses.Add(e.amount)
	}
	return payments, expenses, nil
}

func (f *fakeDashboardRepo) SumPaymentsSince(_ context.Context, from time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range f.payments {
		if !p.date.Before(from) {
			total = total.Add(p.amount)
		}
	}
	return total, nil
}

func (f *fakeDashboardRepo) SumPaymentsBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range f.payments {
		if !p.date.Before(from) && p.date.Before(to) {
			total = total.Add(p.amount)
		}
	}
	return total, nil
}

func (f *fakeDashboardRepo) SumExpensesSince(_ context.Context, from time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range f.expenses {
		if !e.date.Before(from) {
			total = total.Add(e.amount)
		}
	}
	return total, nil
}

func (f *fakeDashboardRepo) SumExpensesBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range f.expenses {
		if !e.date.Before(from) && e.date.Before(to) {
			total = total.Add(e.amount)
		}
	}
	return total, nil
}

func (f *fakeDashboardRepo) ExpectedMonthlyRent(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range f.leases {
		if l.status == entity.LeaseStatusActive {
			total = total.Add(l.monthlyRent)
		}
	}
	return total, nil
}

func (f *fakeDashboardRepo) CountUnits(context.Context) (repository.UnitCounts, error) {
	c := repository.UnitCounts{Total: len(f.unitStatuses)}
	for _, s := range f.unitStatuses {
		if s == entity.UnitStatusOccupied {
			c.Occupied++
		}
	}
	return c, nil
}

func (f *fakeDashboardRepo) CountProperties(context.Context) (int, error) {
	return f.properties, nil
}

func (f *fakeDashboardRepo) CountExpiringLeases(_ context.Context, until time.Time) (int, error) {
	n := 0
	for _, l := range f.leases {
		if l.status == entity.LeaseStatusActive && !l.endDate.After(until) {
			n++
		}
	}
	return n, nil
}

func (f *fakeDashboardRepo) CountOverdueTenants(_ context.Context, monthStart time.Time) (int, error) {
	paid := map[string]bool{}
	for _, p := range f.payments {
		if !p.date.Before(monthStart) {
			paid[p.tenantID] = true
		}
	}
	overdue := map[string]bool{}
	for _, l := range f.leases {
		if l.status == entity.LeaseStatusActive && !paid[l.tenantID] {
			overdue[l.tenantID] = true
		}
	}
	return len(overdue), nil
}

func (f *fakeDashboardRepo) RecentTickets(_ context.Context, limit int) ([]*entity.MaintenanceTicket, error) {
	sorted := append([]*entity.MaintenanceTicket(nil), f.tickets...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].CreatedAt.After(sorted[i].CreatedAt) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (f *fakeDashboardRepo) CountUrgentOpenTickets(context.Context) (int, error) {
	n := 0
	for _, t := range f.tickets {
		if t.Priority == entity.TicketPriorityEmergency && t.Status == entity.TicketStatusOpen {
			n++
		}
	}
	return n, nil
}

func (f *fakeDashboardRepo) CountVisitorsBetween(_ context.Context, from, to time.Time) (int, error) {
	n := 0
	for _, v := range f.visitors {
		if !v.entryTime.Before(from) && v.entryTime.Before(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeDashboardRepo) CountCheckedInVisitors(context.Context) (int, error) {
	n := 0
	for _, v := range f.visitors {
		if v.exitTime == nil {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// Instante fijo para todos los tests: 15 de marzo de 2026, 10:00 UTC.
var testNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Almacén vacío: todas las métricas en cero, sin errores.
func TestSnapshot_AlmacenVacio_TodoEnCero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{})
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.True(t, snap.TotalRevenue.IsZero())
	assert.True(t, snap.TotalExpenses.IsZero())
	assert.True(t, snap.NetIncome.IsZero())
	assert.True(t, snap.ProfitTrend.IsZero())
	assert.True(t, snap.OutstandingRent.IsZero())
	assert.True(t, snap.OccupancyRate.IsZero(), "sin unidades la ocupación es 0, no división por cero")
	assert.Zero(t, snap.TotalUnits)
	assert.Zero(t, snap.ExpiringLeases)
	assert.Zero(t, snap.OverdueTenants)
	assert.Empty(t, snap.RecentTickets)
	assert.Zero(t, snap.VisitorsToday)
	assert.Zero(t, snap.CurrentlyCheckedIn)
}

func TestSnapshot_TotalesFinancieros(t *testing.T) {
	repo := &fakeDashboardRepo{
		payments: []fixPayment{
			{tenantID: "t1", amount: money(50000), date: testNow},
			{tenantID: "t2", amount: money(30000), date: testNow.AddDate(0, -3, 0)},
		},
		expenses: []fixExpense{
			{amount: money(20000), date: testNow.AddDate(0, -1, 0)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.True(t, snap.TotalRevenue.Equal(money(80000)))
	assert.True(t, snap.TotalExpenses.Equal(money(20000)))
	assert.True(t, snap.NetIncome.Equal(money(60000)), "net_income = ingresos - gastos")
	assert.True(t, snap.CurrentMonthRevenue.Equal(money(50000)),
		"solo el pago de este mes cuenta en curr_month_revenue")
}

// Tendencia con mes anterior positivo: variación porcentual a un decimal.
func TestSnapshot_ProfitTrend_MesAnteriorPositivo(t *testing.T) {
	prevMonth := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeDashboardRepo{
		payments: []fixPayment{
			{tenantID: "t1", amount: money(150), date: testNow},
			{tenantID: "t1", amount: money(100), date: prevMonth},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	// (150 - 100) / 100 * 100 = 50.0
	assert.True(t, snap.ProfitTrend.Equal(money(50)),
		"trend esperado 50, obtenido %s", snap.ProfitTrend)
}

// Mes anterior en cero y mes actual positivo: valor fijo 100.
func TestSnapshot_ProfitTrend_SinBaseDeComparacion(t *testing.T) {
	repo := &fakeDashboardRepo{
		payments: []fixPayment{
			{tenantID: "t1", amount: money(500), date: testNow},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.True(t, snap.ProfitTrend.Equal(money(100)))
}

// Ambos meses sin beneficio: tendencia 0.
func TestSnapshot_ProfitTrend_SinBeneficio(t *testing.T) {
	repo := &fakeDashboardRepo{
		expenses: []fixExpense{
			{amount: money(500), date: testNow},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.True(t, snap.ProfitTrend.IsZero())
}

// Un contrato activo de 50000 con su pago del mes: renta pendiente 0.
func TestSnapshot_OutstandingRent_PagoCompleto(t *testing.T) {
	repo := &fakeDashboardRepo{
		leases: []fixLease{
			{tenantID: "t1", monthlyRent: money(50000), status: entity.LeaseStatusActive, endDate: testNow.AddDate(1, 0, 0)},
		},
		payments: []fixPayment{
			{tenantID: "t1", amount: money(50000), date: testNow},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.True(t, snap.OutstandingRent.IsZero())
	assert.Zero(t, snap.OverdueTenants)
}

// Mismo contrato sin pago del mes: pendiente 50000 y el inquilino en mora.
func TestSnapshot_OutstandingRent_SinPago(t *testing.T) {
	repo := &fakeDashboardRepo{
		leases: []fixLease{
			{tenantID: "t1", monthlyRent: money(50000), status: entity.LeaseStatusActive, endDate: testNow.AddDate(1, 0, 0)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.True(t, snap.OutstandingRent.Equal(money(50000)))
	assert.Equal(t, 1, snap.OverdueTenants)
}

// Pagos por encima de la renta esperada: el pendiente se recorta a 0, nunca negativo.
func TestSnapshot_OutstandingRent_NuncaNegativo(t *testing.T) {
	repo := &fakeDashboardRepo{
		leases: []fixLease{
			{tenantID: "t1", monthlyRent: money(1000), status: entity.LeaseStatusActive, endDate: testNow.AddDate(1, 0, 0)},
		},
		payments: []fixPayment{
			{tenantID: "t1", amount: money(5000), date: testNow},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.True(t, snap.OutstandingRent.IsZero())
}

// 10 unidades, 4 ocupadas: 40.0% y 6 vacantes. Las unidades en mantenimiento
// caen en el bloque vacante.
func TestSnapshot_Ocupacion(t *testing.T) {
	statuses := []string{
		entity.UnitStatusOccupied, entity.UnitStatusOccupied,
		entity.UnitStatusOccupied, entity.UnitStatusOccupied,
		entity.UnitStatusVacant, entity.UnitStatusVacant, entity.UnitStatusVacant,
		entity.UnitStatusVacant, entity.UnitStatusMaintenance, entity.UnitStatusMaintenance,
	}
	repo := &fakeDashboardRepo{unitStatuses: statuses, properties: 2}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 10, snap.TotalUnits)
	assert.Equal(t, 4, snap.OccupiedUnits)
	assert.Equal(t, 6, snap.VacantUnits)
	assert.Equal(t, 2, snap.TotalProperties)
	assert.Equal(t, "40", snap.OccupancyRate.String())
}

// Redondeo de la ocupación a un decimal: 1 de 3 ocupadas = 33.3%.
func TestSnapshot_Ocupacion_Redondeo(t *testing.T) {
	repo := &fakeDashboardRepo{
		unitStatuses: []string{entity.UnitStatusOccupied, entity.UnitStatusVacant, entity.UnitStatusVacant},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, "33.3", snap.OccupancyRate.String())
}

// Contratos por vencer: solo activos con end_date dentro de 30 días.
func TestSnapshot_ContratosPorVencer(t *testing.T) {
	repo := &fakeDashboardRepo{
		leases: []fixLease{
			{tenantID: "t1", monthlyRent: money(100), status: entity.LeaseStatusActive, endDate: testNow.AddDate(0, 0, 10)},
			{tenantID: "t2", monthlyRent: money(100), status: entity.LeaseStatusTerminated, endDate: testNow.AddDate(0, 0, 10)},
			{tenantID: "t3", monthlyRent: money(100), status: entity.LeaseStatusActive, endDate: testNow.AddDate(0, 6, 0)},
		},
		payments: []fixPayment{
			{tenantID: "t1", amount: money(100), date: testNow},
			{tenantID: "t3", amount: money(100), date: testNow},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.ExpiringLeases,
		"el contrato terminado y el que vence en 6 meses no cuentan")
}

// Widget de mantenimiento: últimos 5 tickets descendentes y conteo de urgentes.
func TestSnapshot_Mantenimiento(t *testing.T) {
	tickets := make([]*entity.MaintenanceTicket, 0, 7)
	for i := 0; i < 7; i++ {
		tickets = append(tickets, &entity.MaintenanceTicket{
			ID:        string(rune('a' + i)),
			Priority:  entity.TicketPriorityLow,
			Status:    entity.TicketStatusOpen,
			CreatedAt: testNow.Add(-time.Duration(i) * time.Hour),
		})
	}
	tickets[0].Priority = entity.TicketPriorityEmergency // abierto y urgente
	tickets[1].Priority = entity.TicketPriorityEmergency
	tickets[1].Status = entity.TicketStatusResolved // urgente pero ya resuelto

	repo := &fakeDashboardRepo{tickets: tickets}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, snap.RecentTickets, 5)
	assert.Equal(t, "a", snap.RecentTickets[0].ID, "el más reciente primero")
	assert.Equal(t, 1, snap.UrgentTickets, "solo emergencia + abierto cuenta como urgente")
}

// Portería: visitantes de hoy por fecha calendario y presentes sin hora de salida.
func TestSnapshot_Porteria(t *testing.T) {
	exit := testNow.Add(-1 * time.Hour)
	repo := &fakeDashboardRepo{
		visitors: []fixVisitor{
			{entryTime: testNow.Add(-2 * time.Hour), exitTime: &exit}, // hoy, ya salió
			{entryTime: testNow.Add(-30 * time.Minute)},               // hoy, adentro
			{entryTime: testNow.AddDate(0, 0, -1)},                    // ayer, adentro
		},
	}
	uc := analytics.NewDashboardUseCase(repo)
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.VisitorsToday, "solo las entradas de hoy")
	assert.Equal(t, 2, snap.CurrentlyCheckedIn, "sin exit_time, sin importar el día")
}

// Dos snapshots sin escrituras intermedias deben ser idénticos: el cálculo es
// función determinista del almacén y del instante inyectado.
func TestSnapshot_Idempotente(t *testing.T) {
	repo := &fakeDashboardRepo{
		payments: []fixPayment{
			{tenantID: "t1", amount: money(50000), date: testNow},
			{tenantID: "t2", amount: money(30000), date: testNow.AddDate(0, -1, 0)},
		},
		expenses: []fixExpense{
			{amount: money(20000), date: testNow},
		},
		leases: []fixLease{
			{tenantID: "t1", monthlyRent: money(50000), status: entity.LeaseStatusActive, endDate: testNow.AddDate(0, 0, 20)},
		},
		unitStatuses: []string{entity.UnitStatusOccupied, entity.UnitStatusVacant},
		properties:   1,
	}
	uc := analytics.NewDashboardUseCase(repo)

	first, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)
	second, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// La etiqueta del período sale del instante inyectado, no del reloj del sistema.
func TestSnapshot_EtiquetaDePeriodo(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{})
	snap, err := uc.Snapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, "Marzo 2026", snap.DateLabel)
}
