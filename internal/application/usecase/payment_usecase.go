package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PaymentUseCase casos de uso para pagos de renta. Los pagos son inmutables:
// se crean, se consultan y se les genera recibo, nunca se editan ni borran.
type PaymentUseCase struct {
	repo       repository.PaymentRepository
	tenantRepo repository.TenantRepository
	leaseRepo  repository.LeaseRepository
	pdfGen     ReceiptPDFGenerator
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	repo repository.PaymentRepository,
	tenantRepo repository.TenantRepository,
	leaseRepo repository.LeaseRepository,
	pdfGen ReceiptPDFGenerator,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, tenantRepo: tenantRepo, leaseRepo: leaseRepo, pdfGen: pdfGen}
}

// Create registra un pago. Un número de recibo repetido vuelve como error de
// validación sobre ese campo; ErrNotFound si el inquilino o el contrato no
// existen.
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	fe := domain.FieldErrors{}
	if in.TenantID == "" {
		fe.Add("tenant_id", "requerido")
	}
	if in.ReceiptNumber == "" {
		fe.Add("receipt_number", "requerido")
	}
	if !entity.ValidPaymentMethod(in.Method) {
		fe.Add("method", "valor fuera del enum")
	}
	if !in.Amount.IsPositive() {
		fe.Add("amount", "debe ser mayor que cero")
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		fe.Add("date", "formato inválido, se espera YYYY-MM-DD")
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
	if in.LeaseID != nil {
		lease, err := uc.leaseRepo.GetByID(*in.LeaseID)
		if err != nil {
			return nil, err
		}
		if lease == nil {
			return nil, domain.ErrNotFound
		}
	}

	payment := &entity.Payment{
		ID:            uuid.New().String(),
		TenantID:      in.TenantID,
		LeaseID:       in.LeaseID,
		Amount:        in.Amount,
		Date:          date,
		Method:        in.Method,
		ReceiptNumber: in.ReceiptNumber,
		Notes:         in.Notes,
	}
	if err := uc.repo.Create(payment); err != nil {
		// La constraint UNIQUE de receipt_number es la fuente de verdad.
		if errors.Is(err, domain.ErrDuplicate) {
			fe.Add("receipt_number", "ya existe un pago con ese número de recibo")
			return nil, fe
		}
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// GetByID obtiene un pago por ID.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	return toPaymentResponse(payment), nil
}

// List lista pagos con paginación; con tenantID filtra por inquilino.
func (uc *PaymentUseCase) List(tenantID string, limit, offset int) (*dto.PaymentListResponse, error) {
	var list []*entity.Payment
	var err error
	if tenantID != "" {
		list, err = uc.repo.ListByTenant(tenantID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Prefill arma los valores sugeridos del formulario de nuevo pago: el contrato
// activo del inquilino y su renta mensual. Si no hay contrato activo, el monto
// queda en cero y lease_id en nil.
func (uc *PaymentUseCase) Prefill(tenantID string) (*dto.PaymentPrefillResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}
	resp := &dto.PaymentPrefillResponse{
		TenantID: tenantID,
		Amount:   decimal.Zero,
		Date:     time.Now().Format(dto.DateLayout),
	}
	lease, err := uc.leaseRepo.GetActiveByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if lease != nil {
		resp.LeaseID = &lease.ID
		resp.Amount = lease.MonthlyRent
	}
	return resp, nil
}

// ReceiptPDF genera el recibo PDF de un pago y devuelve sus bytes.
func (uc *PaymentUseCase) ReceiptPDF(ctx context.Context, paymentID string) ([]byte, error) {
	payment, err := uc.repo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	tenant, err := uc.tenantRepo.GetByID(payment.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	var lease *entity.Lease
	if payment.LeaseID != nil {
		lease, err = uc.leaseRepo.GetByID(*payment.LeaseID)
		if err != nil {
			return nil, err
		}
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, payment, tenant, lease)
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		LeaseID:       p.LeaseID,
		Amount:        p.Amount,
		Date:          p.Date.Format(dto.DateLayout),
		Method:        p.Method,
		ReceiptNumber: p.ReceiptNumber,
		Notes:         p.Notes,
	}
}
