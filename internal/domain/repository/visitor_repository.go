package repository

import (
	"time"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// VisitorRepository define el puerto de persistencia para Visitor.
type VisitorRepository interface {
	Create(visitor *entity.Visitor) error
	GetByID(id string) (*entity.Visitor, error)
	// List devuelve visitas ordenadas por hora de entrada descendente.
	List(limit, offset int) ([]*entity.Visitor, error)
	// SetExitTime registra la salida del visitante.
	SetExitTime(id string, exitTime time.Time) error
}
