package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSnapshotDTO respuesta de GET /api/dashboard.
// Reúne en una sola respuesta los indicadores financieros, de ocupación,
// contratos, mantenimiento y portería al momento de la consulta.
type DashboardSnapshotDTO struct {
	// Finanzas históricas
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"` // revenue - expenses

	// Mes en curso
	CurrentMonthRevenue  decimal.Decimal `json:"current_month_revenue"`
	CurrentMonthExpenses decimal.Decimal `json:"current_month_expenses"`
	ProfitTrend          decimal.Decimal `json:"profit_trend"` // % vs mes anterior, 1 decimal
	OutstandingRent      decimal.Decimal `json:"outstanding_rent"`
	ExpectedMonthlyRent  decimal.Decimal `json:"expected_monthly_rent"`

	// Ocupación
	TotalProperties int             `json:"total_properties"`
	TotalUnits      int             `json:"total_units"`
	OccupiedUnits   int             `json:"occupied_units"`
	VacantUnits     int             `json:"vacant_units"` // incluye unidades en mantenimiento
	OccupancyRate   decimal.Decimal `json:"occupancy_rate"` // %, 1 decimal

	// Contratos e inquilinos
	ExpiringLeases int `json:"expiring_leases"` // activos que vencen en <= 30 días
	OverdueTenants int `json:"overdue_tenants"` // sin pago en el mes en curso

	// Mantenimiento
	RecentTickets []TicketSummaryDTO `json:"recent_tickets"` // últimos 5
	UrgentTickets int                `json:"urgent_tickets"` // emergencia + abiertos

	// Portería
	VisitorsToday      int `json:"visitors_today"`
	CurrentlyCheckedIn int `json:"currently_checked_in"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// TicketSummaryDTO resumen de un ticket para el widget del dashboard.
type TicketSummaryDTO struct {
	ID          string    `json:"id"`
	UnitID      string    `json:"unit_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
