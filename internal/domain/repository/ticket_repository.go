package repository

import "github.com/jhoicas/Propiedades-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para MaintenanceTicket.
type TicketRepository interface {
	Create(ticket *entity.MaintenanceTicket) error
	GetByID(id string) (*entity.MaintenanceTicket, error)
	// List devuelve tickets ordenados por fecha de creación descendente.
	List(limit, offset int) ([]*entity.MaintenanceTicket, error)
	Update(ticket *entity.MaintenanceTicket) error
}
