package repository

import "github.com/jhoicas/Propiedades-api/internal/domain/entity"

// LeaseRepository define el puerto de persistencia para Lease.
type LeaseRepository interface {
	Create(lease *entity.Lease) error
	GetByID(id string) (*entity.Lease, error)
	List(limit, offset int) ([]*entity.Lease, error)
	Update(lease *entity.Lease) error
	// GetActiveByTenant devuelve el contrato activo más reciente del inquilino,
	// o nil si no tiene ninguno (para prellenar el formulario de pago).
	GetActiveByTenant(tenantID string) (*entity.Lease, error)
}
