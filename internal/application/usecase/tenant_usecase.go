package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TenantUseCase casos de uso CRUD para inquilinos. No hay Delete: un inquilino
// que se va pasa a estado "past" para conservar su historial de pagos.
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// Create registra un inquilino. Un número de cédula/pasaporte ya registrado
// vuelve como error de validación sobre ese campo.
func (uc *TenantUseCase) Create(in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	fe := domain.FieldErrors{}
	if in.FirstName == "" {
		fe.Add("first_name", "requerido")
	}
	if in.LastName == "" {
		fe.Add("last_name", "requerido")
	}
	if in.IDPassportNumber == "" {
		fe.Add("id_passport_number", "requerido")
	}
	var rentDueDate *time.Time
	if in.RentDueDate != "" {
		d, err := time.Parse(dto.DateLayout, in.RentDueDate)
		if err != nil {
			fe.Add("rent_due_date", "formato inválido, se espera YYYY-MM-DD")
		} else {
			rentDueDate = &d
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}
	existing, err := uc.repo.GetByIDPassport(in.IDPassportNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		fe.Add("id_passport_number", "ya está registrado")
		return nil, fe
	}
	tenant := &entity.Tenant{
		ID:               uuid.New().String(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		IDPassportNumber: in.IDPassportNumber,
		Phone:            in.Phone,
		Email:            in.Email,
		EmergencyContact: in.EmergencyContact,
		Status:           entity.TenantStatusActive,
		Notes:            in.Notes,
		RentDueDate:      rentDueDate,
		Balance:          decimal.Zero,
		CreatedAt:        time.Now(),
	}
	if err := uc.repo.Create(tenant); err != nil {
		// Carrera contra otro create con la misma cédula: la constraint UNIQUE
		// de la tabla es la fuente de verdad.
		if errors.Is(err, domain.ErrDuplicate) {
			fe.Add("id_passport_number", "ya está registrado")
			return nil, fe
		}
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// GetByID obtiene un inquilino por ID.
func (uc *TenantUseCase) GetByID(id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}
	return toTenantResponse(tenant), nil
}

// Update actualiza un inquilino. El número de documento no se modifica.
func (uc *TenantUseCase) Update(id string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}
	fe := domain.FieldErrors{}
	if in.FirstName != nil {
		if *in.FirstName == "" {
			fe.Add("first_name", "no puede ser vacío")
		} else {
			tenant.FirstName = *in.FirstName
		}
	}
	if in.LastName != nil {
		if *in.LastName == "" {
			fe.Add("last_name", "no puede ser vacío")
		} else {
			tenant.LastName = *in.LastName
		}
	}
	if in.Phone != nil {
		tenant.Phone = *in.Phone
	}
	if in.Email != nil {
		tenant.Email = *in.Email
	}
	if in.EmergencyContact != nil {
		tenant.EmergencyContact = *in.EmergencyContact
	}
	if in.Status != nil {
		if !entity.ValidTenantStatus(*in.Status) {
			fe.Add("status", "valor fuera del enum")
		} else {
			tenant.Status = *in.Status
		}
	}
	if in.Notes != nil {
		tenant.Notes = *in.Notes
	}
	if in.RentDueDate != nil {
		if *in.RentDueDate == "" {
			tenant.RentDueDate = nil
		} else {
			d, err := time.Parse(dto.DateLayout, *in.RentDueDate)
			if err != nil {
				fe.Add("rent_due_date", "formato inválido, se espera YYYY-MM-DD")
			} else {
				tenant.RentDueDate = &d
			}
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}
	if err := uc.repo.Update(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// List lista inquilinos con paginación.
func (uc *TenantUseCase) List(limit, offset int) (*dto.TenantListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTenantResponse(t))
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	resp := &dto.TenantResponse{
		ID:               t.ID,
		FirstName:        t.FirstName,
		LastName:         t.LastName,
		FullName:         t.FullName(),
		IDPassportNumber: t.IDPassportNumber,
		Phone:            t.Phone,
		Email:            t.Email,
		EmergencyContact: t.EmergencyContact,
		Status:           t.Status,
		Notes:            t.Notes,
		Balance:          t.Balance,
		CreatedAt:        t.CreatedAt,
	}
	if t.RentDueDate != nil {
		resp.RentDueDate = t.RentDueDate.Format(dto.DateLayout)
	}
	return resp
}
