package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// PropertyUseCase casos de uso CRUD para propiedades.
type PropertyUseCase struct {
	repo repository.PropertyRepository
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(repo repository.PropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo}
}

// Create registra una propiedad a nombre del usuario autenticado.
func (uc *PropertyUseCase) Create(ownerID string, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	fe := domain.FieldErrors{}
	if in.Name == "" {
		fe.Add("name", "requerido")
	}
	if in.Address == "" {
		fe.Add("address", "requerido")
	}
	if len(fe) > 0 {
		return nil, fe
	}
	now := time.Now()
	property := &entity.Property{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		OwnerID:     ownerID,
		Status:      entity.PropertyStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(property); err != nil {
		return nil, err
	}
	return toPropertyResponse(property), nil
}

// GetByID obtiene una propiedad por ID.
func (uc *PropertyUseCase) GetByID(id string) (*dto.PropertyResponse, error) {
	property, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}
	return toPropertyResponse(property), nil
}

// Update actualiza los campos editables de una propiedad.
func (uc *PropertyUseCase) Update(id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	property, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}
	if in.Name != nil {
		property.Name = *in.Name
	}
	if in.Address != nil {
		property.Address = *in.Address
	}
	if in.Description != nil {
		property.Description = *in.Description
	}
	if in.Status != nil {
		if *in.Status != entity.PropertyStatusActive && *in.Status != entity.PropertyStatusInactive {
			fe := domain.FieldErrors{}
			fe.Add("status", "valor fuera del enum")
			return nil, fe
		}
		property.Status = *in.Status
	}
	property.UpdatedAt = time.Now()
	if err := uc.repo.Update(property); err != nil {
		return nil, err
	}
	return toPropertyResponse(property), nil
}

// List lista propiedades con paginación.
func (uc *PropertyUseCase) List(limit, offset int) (*dto.PropertyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPropertyResponse(p))
	}
	return &dto.PropertyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una propiedad; sus unidades caen en cascada.
func (uc *PropertyUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	if p == nil {
		return nil
	}
	return &dto.PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
