package repository

import "github.com/jhoicas/Propiedades-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	ListByProperty(propertyID string) ([]*entity.Unit, error)
	List(limit, offset int) ([]*entity.Unit, error)
	Update(unit *entity.Unit) error
	// UpdateStatus cambia solo el estado (occupied | vacant | maintenance).
	UpdateStatus(id, status string) error
}
