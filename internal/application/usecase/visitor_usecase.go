package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// VisitorUseCase casos de uso de portería: entradas y salidas de visitantes.
type VisitorUseCase struct {
	repo     repository.VisitorRepository
	unitRepo repository.UnitRepository
}

// NewVisitorUseCase construye el caso de uso.
func NewVisitorUseCase(repo repository.VisitorRepository, unitRepo repository.UnitRepository) *VisitorUseCase {
	return &VisitorUseCase{repo: repo, unitRepo: unitRepo}
}

// Create registra la entrada de un visitante. Si no trae hora de entrada se
// usa la hora del servidor.
func (uc *VisitorUseCase) Create(in dto.CreateVisitorRequest) (*dto.VisitorResponse, error) {
	fe := domain.FieldErrors{}
	if in.Name == "" {
		fe.Add("name", "requerido")
	}
	if in.UnitID == "" {
		fe.Add("unit_id", "requerido")
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

	entryTime := time.Now()
	if in.EntryTime != nil {
		entryTime = *in.EntryTime
	}
	visitor := &entity.Visitor{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Phone:             in.Phone,
		IDNumber:          in.IDNumber,
		UnitID:            in.UnitID,
		VehiclePlate:      in.VehiclePlate,
		EntryTime:         entryTime,
		SecurityGuardName: in.SecurityGuardName,
	}
	if err := uc.repo.Create(visitor); err != nil {
		return nil, err
	}
	return toVisitorResponse(visitor), nil
}

// GetByID obtiene un registro de visita por ID.
func (uc *VisitorUseCase) GetByID(id string) (*dto.VisitorResponse, error) {
	visitor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if visitor == nil {
		return nil, nil
	}
	return toVisitorResponse(visitor), nil
}

// List lista visitas con paginación, por hora de entrada descendente.
func (uc *VisitorUseCase) List(limit, offset int) (*dto.VisitorListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VisitorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVisitorResponse(v))
	}
	return &dto.VisitorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Checkout registra la salida del visitante. Devuelve ErrAlreadyCheckedOut si
// la salida ya estaba registrada; registrar dos salidas no es válido.
func (uc *VisitorUseCase) Checkout(id string) (*dto.VisitorResponse, error) {
	visitor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if visitor == nil {
		return nil, nil
	}
	if visitor.ExitTime != nil {
		return nil, domain.ErrAlreadyCheckedOut
	}
	exit := time.Now()
	if err := uc.repo.SetExitTime(id, exit); err != nil {
		return nil, err
	}
	visitor.ExitTime = &exit
	return toVisitorResponse(visitor), nil
}

func toVisitorResponse(v *entity.Visitor) *dto.VisitorResponse {
	if v == nil {
		return nil
	}
	return &dto.VisitorResponse{
		ID:                v.ID,
		Name:              v.Name,
		Phone:             v.Phone,
		IDNumber:          v.IDNumber,
		UnitID:            v.UnitID,
		VehiclePlate:      v.VehiclePlate,
		EntryTime:         v.EntryTime,
		ExitTime:          v.ExitTime,
		SecurityGuardName: v.SecurityGuardName,
		CheckedIn:         v.ExitTime == nil,
	}
}
