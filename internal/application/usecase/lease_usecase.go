package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// LeaseUseCase casos de uso para contratos de arrendamiento. La creación corre
// dentro de una transacción: el contrato y el paso de la unidad a "occupied"
// se confirman juntos.
type LeaseUseCase struct {
	repo       repository.LeaseRepository
	unitRepo   repository.UnitRepository
	tenantRepo repository.TenantRepository
	tx         LeaseTxRunner
}

// NewLeaseUseCase construye el caso de uso.
func NewLeaseUseCase(
	repo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
	tenantRepo repository.TenantRepository,
	tx LeaseTxRunner,
) *LeaseUseCase {
	return &LeaseUseCase{repo: repo, unitRepo: unitRepo, tenantRepo: tenantRepo, tx: tx}
}

// Create crea un contrato y marca la unidad como ocupada en la misma
// transacción. La unidad pasa a "occupied" sin importar su estado previo.
func (uc *LeaseUseCase) Create(ctx context.Context, in dto.CreateLeaseRequest) (*dto.LeaseResponse, error) {
	fe := domain.FieldErrors{}
	if in.TenantID == "" {
		fe.Add("tenant_id", "requerido")
	}
	if in.UnitID == "" {
		fe.Add("unit_id", "requerido")
	}
	start, err := time.Parse(dto.DateLayout, in.StartDate)
	if err != nil {
		fe.Add("start_date", "formato inválido, se espera YYYY-MM-DD")
	}
	end, err := time.Parse(dto.DateLayout, in.EndDate)
	if err != nil {
		fe.Add("end_date", "formato inválido, se espera YYYY-MM-DD")
	}
	if len(fe) == 0 && end.Before(start) {
		fe.Add("end_date", "debe ser posterior a start_date")
	}
	if in.MonthlyRent.IsNegative() {
		fe.Add("monthly_rent", "no puede ser negativo")
	}
	if in.DepositAmount.IsNegative() {
		fe.Add("deposit_amount", "no puede ser negativo")
	}
	if len(fe) > 0 {
		return nil, fe
	}

	tenant, err := uc.tenantRepo.GetByID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}

	frequency := in.PaymentFrequency
	if frequency == "" {
		frequency = "monthly"
	}
	lease := &entity.Lease{
		ID:               uuid.New().String(),
		TenantID:         in.TenantID,
		UnitID:           in.UnitID,
		StartDate:        start,
		EndDate:          end,
		MonthlyRent:      in.MonthlyRent,
		DepositAmount:    in.DepositAmount,
		PaymentFrequency: frequency,
		AgreementFile:    in.AgreementFile,
		Status:           entity.LeaseStatusActive,
		CreatedAt:        time.Now(),
	}

	err = uc.tx.Run(ctx, func(leaseRepo repository.LeaseRepository, unitRepo repository.UnitRepository) error {
		if err := leaseRepo.Create(lease); err != nil {
			return err
		}
		return unitRepo.UpdateStatus(unit.ID, entity.UnitStatusOccupied)
	})
	if err != nil {
		return nil, err
	}
	return toLeaseResponse(lease), nil
}

// GetByID obtiene un contrato por ID.
func (uc *LeaseUseCase) GetByID(id string) (*dto.LeaseResponse, error) {
	lease, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, nil
	}
	return toLeaseResponse(lease), nil
}

// Update actualiza un contrato. El estado se cambia a mano (incluida la
// terminación): ningún proceso lo mueve solo.
func (uc *LeaseUseCase) Update(id string, in dto.UpdateLeaseRequest) (*dto.LeaseResponse, error) {
	lease, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, nil
	}
	fe := domain.FieldErrors{}
	if in.StartDate != nil {
		d, err := time.Parse(dto.DateLayout, *in.StartDate)
		if err != nil {
			fe.Add("start_date", "formato inválido, se espera YYYY-MM-DD")
		} else {
			lease.StartDate = d
		}
	}
	if in.EndDate != nil {
		d, err := time.Parse(dto.DateLayout, *in.EndDate)
		if err != nil {
			fe.Add("end_date", "formato inválido, se espera YYYY-MM-DD")
		} else {
			lease.EndDate = d
		}
	}
	if len(fe) == 0 && lease.EndDate.Before(lease.StartDate) {
		fe.Add("end_date", "debe ser posterior a start_date")
	}
	if in.MonthlyRent != nil {
		if in.MonthlyRent.IsNegative() {
			fe.Add("monthly_rent", "no puede ser negativo")
		} else {
			lease.MonthlyRent = *in.MonthlyRent
		}
	}
	if in.DepositAmount != nil {
		if in.DepositAmount.IsNegative() {
			fe.Add("deposit_amount", "no puede ser negativo")
		} else {
			lease.DepositAmount = *in.DepositAmount
		}
	}
	if in.PaymentFrequency != nil {
		lease.PaymentFrequency = *in.PaymentFrequency
	}
	if in.AgreementFile != nil {
		lease.AgreementFile = *in.AgreementFile
	}
	if in.Status != nil {
		if !entity.ValidLeaseStatus(*in.Status) {
			fe.Add("status", "valor fuera del enum")
		} else {
			lease.Status = *in.Status
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}
	if err := uc.repo.Update(lease); err != nil {
		return nil, err
	}
	return toLeaseResponse(lease), nil
}

// List lista contratos con paginación.
func (uc *LeaseUseCase) List(limit, offset int) (*dto.LeaseListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeaseResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLeaseResponse(l))
	}
	return &dto.LeaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Prefill arma los valores sugeridos del formulario de nuevo contrato a partir
// de la unidad: renta y depósito de referencia, vigencia de un año desde hoy.
func (uc *LeaseUseCase) Prefill(unitID string) (*dto.LeasePrefillResponse, error) {
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	today := time.Now()
	return &dto.LeasePrefillResponse{
		UnitID:        unit.ID,
		UnitNumber:    unit.UnitNumber,
		PropertyID:    unit.PropertyID,
		MonthlyRent:   unit.RentAmount,
		DepositAmount: unit.DepositAmount,
		StartDate:     today.Format(dto.DateLayout),
		EndDate:       today.AddDate(1, 0, 0).Format(dto.DateLayout),
	}, nil
}

func toLeaseResponse(l *entity.Lease) *dto.LeaseResponse {
	if l == nil {
		return nil
	}
	return &dto.LeaseResponse{
		ID:               l.ID,
		TenantID:         l.TenantID,
		UnitID:           l.UnitID,
		StartDate:        l.StartDate.Format(dto.DateLayout),
		EndDate:          l.EndDate.Format(dto.DateLayout),
		MonthlyRent:      l.MonthlyRent,
		DepositAmount:    l.DepositAmount,
		PaymentFrequency: l.PaymentFrequency,
		AgreementFile:    l.AgreementFile,
		Status:           l.Status,
		CreatedAt:        l.CreatedAt,
	}
}
