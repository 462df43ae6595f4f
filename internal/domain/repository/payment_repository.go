package repository

import "github.com/jhoicas/Propiedades-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// Los pagos son inmutables: no hay Update ni Delete.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	// List devuelve pagos ordenados por fecha descendente.
	List(limit, offset int) ([]*entity.Payment, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Payment, error)
}
