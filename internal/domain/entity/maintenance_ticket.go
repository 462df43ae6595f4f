package entity

import "time"

// Prioridades de un ticket de mantenimiento.
const (
	TicketPriorityLow       = "low"
	TicketPriorityMedium    = "medium"
	TicketPriorityHigh      = "high"
	TicketPriorityEmergency = "emergency"
)

// Estados de un ticket de mantenimiento.
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// MaintenanceTicket reporte de mantenimiento sobre una unidad. Prioridad y
// estado se actualizan manualmente durante su vida.
type MaintenanceTicket struct {
	ID                 string
	UnitID             string
	TenantID           *string // opcional: quien reporta puede no ser inquilino
	Category           string
	Description        string
	Priority           string // low | medium | high | emergency
	Status             string // open | in_progress | resolved | closed
	AssignedTechnician string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ValidTicketPriority verifica pertenencia al enum de prioridades.
func ValidTicketPriority(p string) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityEmergency:
		return true
	}
	return false
}

// ValidTicketStatus verifica pertenencia al enum de estados.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}
