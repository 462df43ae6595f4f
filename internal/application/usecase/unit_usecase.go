package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades rentables.
type UnitUseCase struct {
	repo         repository.UnitRepository
	propertyRepo repository.PropertyRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository, propertyRepo repository.PropertyRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo, propertyRepo: propertyRepo}
}

// Create registra una unidad dentro de una propiedad. Nace vacante.
// Devuelve ErrDuplicate si (property_id, unit_number) ya existe.
func (uc *UnitUseCase) Create(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	fe := domain.FieldErrors{}
	if in.PropertyID == "" {
		fe.Add("property_id", "requerido")
	}
	if in.UnitNumber == "" {
		fe.Add("unit_number", "requerido")
	}
	if !entity.ValidUnitType(in.UnitType) {
		fe.Add("unit_type", "valor fuera del enum")
	}
	if in.RentAmount.IsNegative() {
		fe.Add("rent_amount", "no puede ser negativo")
	}
	if in.DepositAmount.IsNegative() {
		fe.Add("deposit_amount", "no puede ser negativo")
	}
	if len(fe) > 0 {
		return nil, fe
	}
	property, err := uc.propertyRepo.GetByID(in.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}
	unit := &entity.Unit{
		ID:               uuid.New().String(),
		PropertyID:       in.PropertyID,
		UnitNumber:       in.UnitNumber,
		UnitType:         in.UnitType,
		RentAmount:       in.RentAmount,
		DepositAmount:    in.DepositAmount,
		Status:           entity.UnitStatusVacant,
		WaterMeter:       in.WaterMeter,
		ElectricityMeter: in.ElectricityMeter,
		CreatedAt:        time.Now(),
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene una unidad por ID.
func (uc *UnitUseCase) GetByID(id string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return toUnitResponse(unit), nil
}

// Update actualiza una unidad, incluido el cambio manual de estado.
func (uc *UnitUseCase) Update(id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	fe := domain.FieldErrors{}
	if in.UnitNumber != nil {
		if *in.UnitNumber == "" {
			fe.Add("unit_number", "no puede ser vacío")
		} else {
			unit.UnitNumber = *in.UnitNumber
		}
	}
	if in.UnitType != nil {
		if !entity.ValidUnitType(*in.UnitType) {
			fe.Add("unit_type", "valor fuera del enum")
		} else {
			unit.UnitType = *in.UnitType
		}
	}
	if in.RentAmount != nil {
		if in.RentAmount.IsNegative() {
			fe.Add("rent_amount", "no puede ser negativo")
		} else {
			unit.RentAmount = *in.RentAmount
		}
	}
	if in.DepositAmount != nil {
		if in.DepositAmount.IsNegative() {
			fe.Add("deposit_amount", "no puede ser negativo")
		} else {
			unit.DepositAmount = *in.DepositAmount
		}
	}
	if in.Status != nil {
		if !entity.ValidUnitStatus(*in.Status) {
			fe.Add("status", "valor fuera del enum")
		} else {
			unit.Status = *in.Status
		}
	}
	if in.WaterMeter != nil {
		unit.WaterMeter = *in.WaterMeter
	}
	if in.ElectricityMeter != nil {
		unit.ElectricityMeter = *in.ElectricityMeter
	}
	if len(fe) > 0 {
		return nil, fe
	}
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// List lista unidades con paginación; con propertyID filtra por propiedad.
func (uc *UnitUseCase) List(propertyID string, limit, offset int) (*dto.UnitListResponse, error) {
	var list []*entity.Unit
	var err error
	if propertyID != "" {
		list, err = uc.repo.ListByProperty(propertyID)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitResponse(u))
	}
	return &dto.UnitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitResponse{
		ID:               u.ID,
		PropertyID:       u.PropertyID,
		UnitNumber:       u.UnitNumber,
		UnitType:         u.UnitType,
		RentAmount:       u.RentAmount,
		DepositAmount:    u.DepositAmount,
		Status:           u.Status,
		WaterMeter:       u.WaterMeter,
		ElectricityMeter: u.ElectricityMeter,
		CreatedAt:        u.CreatedAt,
	}
}
