package entity

import "time"

// Visitor registro de portería: entrada de un visitante a una unidad.
// "Dentro del predio" equivale a ExitTime == nil.
type Visitor struct {
	ID                string
	Name              string
	Phone             string
	IDNumber          string
	UnitID            string // unidad que visita
	VehiclePlate      string
	EntryTime         time.Time
	ExitTime          *time.Time
	SecurityGuardName string
}
