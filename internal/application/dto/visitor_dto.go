package dto

import "time"

// CreateVisitorRequest entrada de portería: registro de entrada de un visitante.
// EntryTime es opcional; si falta, se usa la hora del servidor.
type CreateVisitorRequest struct {
	Name              string     `json:"name" validate:"required"`
	Phone             string     `json:"phone"`
	IDNumber          string     `json:"id_number"`
	UnitID            string     `json:"unit_id" validate:"required"`
	VehiclePlate      string     `json:"vehicle_plate"`
	EntryTime         *time.Time `json:"entry_time"`
	SecurityGuardName string     `json:"security_guard_name"`
}

// VisitorResponse salida de un registro de visita.
type VisitorResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	IDNumber          string     `json:"id_number"`
	UnitID            string     `json:"unit_id"`
	VehiclePlate      string     `json:"vehicle_plate"`
	EntryTime         time.Time  `json:"entry_time"`
	ExitTime          *time.Time `json:"exit_time,omitempty"`
	SecurityGuardName string     `json:"security_guard_name"`
	CheckedIn         bool       `json:"checked_in"` // sin hora de salida registrada
}

// VisitorListResponse lista paginada de visitas.
type VisitorListResponse struct {
	Items []VisitorResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
