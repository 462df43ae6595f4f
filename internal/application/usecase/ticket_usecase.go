package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// TicketUseCase casos de uso para tickets de mantenimiento.
type TicketUseCase struct {
	repo     repository.TicketRepository
	unitRepo repository.UnitRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(repo repository.TicketRepository, unitRepo repository.UnitRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo, unitRepo: unitRepo}
}

// Create abre un ticket. Nace en estado "open"; la prioridad por defecto es
// "medium".
func (uc *TicketUseCase) Create(in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	fe := domain.FieldErrors{}
	if in.UnitID == "" {
		fe.Add("unit_id", "requerido")
	}
	if in.Category == "" {
		fe.Add("category", "requerido")
	}
	if in.Description == "" {
		fe.Add("description", "requerido")
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.TicketPriorityMedium
	}
	if !entity.ValidTicketPriority(priority) {
		fe.Add("priority", "valor fuera del enum")
	}
	if len(fe) > 0 {
		return nil, fe
	}

	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	ticket := &entity.MaintenanceTicket{
		ID:          uuid.New().String(),
		UnitID:      in.UnitID,
		TenantID:    in.TenantID,
		Category:    in.Category,
		Description: in.Description,
		Priority:    priority,
		Status:      entity.TicketStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// GetByID obtiene un ticket por ID.
func (uc *TicketUseCase) GetByID(id string) (*dto.TicketResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	return toTicketResponse(ticket), nil
}

// Update actualización parcial del ticket: estado, prioridad, técnico asignado.
func (uc *TicketUseCase) Update(id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	fe := domain.FieldErrors{}
	if in.Category != nil {
		ticket.Category = *in.Category
	}
	if in.Description != nil {
		ticket.Description = *in.Description
	}
	if in.Priority != nil {
		if !entity.ValidTicketPriority(*in.Priority) {
			fe.Add("priority", "valor fuera del enum")
		} else {
			ticket.Priority = *in.Priority
		}
	}
	if in.Status != nil {
		if !entity.ValidTicketStatus(*in.Status) {
			fe.Add("status", "valor fuera del enum")
		} else {
			ticket.Status = *in.Status
		}
	}
	if in.AssignedTechnician != nil {
		ticket.AssignedTechnician = *in.AssignedTechnician
	}
	if len(fe) > 0 {
		return nil, fe
	}
	ticket.UpdatedAt = time.Now()
	if err := uc.repo.Update(ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// List lista tickets con paginación, más recientes primero.
func (uc *TicketUseCase) List(limit, offset int) (*dto.TicketListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTicketResponse(t))
	}
	return &dto.TicketListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTicketResponse(t *entity.MaintenanceTicket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:                 t.ID,
		UnitID:             t.UnitID,
		TenantID:           t.TenantID,
		Category:           t.Category,
		Description:        t.Description,
		Priority:           t.Priority,
		Status:             t.Status,
		AssignedTechnician: t.AssignedTechnician,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
