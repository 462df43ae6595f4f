package repository

import "github.com/jhoicas/Propiedades-api/internal/domain/entity"

// PropertyRepository define el puerto de persistencia para Property (DIP).
type PropertyRepository interface {
	Create(property *entity.Property) error
	GetByID(id string) (*entity.Property, error)
	List(limit, offset int) ([]*entity.Property, error)
	Update(property *entity.Property) error
	// Delete elimina la propiedad; las unidades caen en cascada por FK.
	Delete(id string) error
}
