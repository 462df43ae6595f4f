package repository

import "github.com/jhoicas/Propiedades-api/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	// GetByIDPassport busca por número de cédula/pasaporte (único).
	GetByIDPassport(number string) (*entity.Tenant, error)
	List(limit, offset int) ([]*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
}
