package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

func buildPaymentUseCase(t *testing.T) (*usecase.PaymentUseCase, *fakePaymentRepo, *fakeTenantRepo, *fakeLeaseRepo, *fakeReceiptGenerator) {
	t.Helper()
	paymentRepo := newFakePaymentRepo()
	tenantRepo := newFakeTenantRepo()
	leaseRepo := newFakeLeaseRepo()
	pdfGen := &fakeReceiptGenerator{}
	uc := usecase.NewPaymentUseCase(paymentRepo, tenantRepo, leaseRepo, pdfGen)
	return uc, paymentRepo, tenantRepo, leaseRepo, pdfGen
}

func seedTenant(tenantRepo *fakeTenantRepo) {
	tenantRepo.tenants["t1"] = &entity.Tenant{
		ID: "t1", FirstName: "Ana", LastName: "Mora",
		IDPassportNumber: "CC-100", Status: entity.TenantStatusActive,
	}
}

func TestPaymentCreate_OK(t *testing.T) {
	uc, paymentRepo, tenantRepo, _, _ := buildPaymentUseCase(t)
	seedTenant(tenantRepo)

	resp, err := uc.Create(dto.CreatePaymentRequest{
		TenantID:      "t1",
		Amount:        decimal.NewFromInt(50000),
		Date:          "2026-03-05",
		Method:        entity.PaymentMethodMpesa,
		ReceiptNumber: "RC-001",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "RC-001", resp.ReceiptNumber)
	assert.Equal(t, "2026-03-05", resp.Date)
	assert.Len(t, paymentRepo.payments, 1)
}

// El número de recibo es único en todo el sistema.
func TestPaymentCreate_ReciboDuplicado(t *testing.T) {
	uc, _, tenantRepo, _, _ := buildPaymentUseCase(t)
	seedTenant(tenantRepo)

	in := dto.CreatePaymentRequest{
		TenantID:      "t1",
		Amount:        decimal.NewFromInt(50000),
		Date:          "2026-03-05",
		Method:        entity.PaymentMethodCash,
		ReceiptNumber: "RC-001",
	}
	_, err := uc.Create(in)
	require.NoError(t, err)

	_, err = uc.Create(in)
	fe, ok := domain.AsFieldErrors(err)
	require.True(t, ok, "el recibo duplicado debe volver como error de validación")
	assert.Contains(t, fe, "receipt_number")
}

func TestPaymentCreate_Validacion(t *testing.T) {
	uc, _, tenantRepo, _, _ := buildPaymentUseCase(t)
	seedTenant(tenantRepo)

	_, err := uc.Create(dto.CreatePaymentRequest{
		TenantID:      "t1",
		Amount:        decimal.Zero, // debe ser positivo
		Date:          "2026-03-05",
		Method:        "cheque", // fuera del enum
		ReceiptNumber: "RC-002",
	})
	fe, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "amount")
	assert.Contains(t, fe, "method")
}

func TestPaymentCreate_InquilinoInexistente(t *testing.T) {
	uc, _, _, _, _ := buildPaymentUseCase(t)

	_, err := uc.Create(dto.CreatePaymentRequest{
		TenantID:      "no-existe",
		Amount:        decimal.NewFromInt(100),
		Date:          "2026-03-05",
		Method:        entity.PaymentMethodCash,
		ReceiptNumber: "RC-003",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Prefill con contrato activo: sugiere el contrato y su renta mensual.
func TestPaymentPrefill_ConContratoActivo(t *testing.T) {
	uc, _, tenantRepo, leaseRepo, _ := buildPaymentUseCase(t)
	seedTenant(tenantRepo)
	leaseRepo.leases["l1"] = &entity.Lease{
		ID: "l1", TenantID: "t1", UnitID: "u1",
		MonthlyRent: decimal.NewFromInt(50000),
		Status:      entity.LeaseStatusActive,
		CreatedAt:   time.Now(),
	}

	resp, err := uc.Prefill("t1")
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.NotNil(t, resp.LeaseID)
	assert.Equal(t, "l1", *resp.LeaseID)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(50000)))
}

// Prefill sin contrato activo: monto en cero y sin contrato sugerido.
func TestPaymentPrefill_SinContratoActivo(t *testing.T) {
	uc, _, tenantRepo, leaseRepo, _ := buildPaymentUseCase(t)
	seedTenant(tenantRepo)
	leaseRepo.leases["l1"] = &entity.Lease{
		ID: "l1", TenantID: "t1", UnitID: "u1",
		MonthlyRent: decimal.NewFromInt(50000),
		Status:      entity.LeaseStatusTerminated,
		CreatedAt:   time.Now(),
	}

	resp, err := uc.Prefill("t1")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Nil(t, resp.LeaseID)
	assert.True(t, resp.Amount.IsZero())
}

func TestPaymentReceiptPDF(t *testing.T) {
	uc, paymentRepo, tenantRepo, _, pdfGen := buildPaymentUseCase(t)
	seedTenant(tenantRepo)
	paymentRepo.payments["pay1"] = &entity.Payment{
		ID: "pay1", TenantID: "t1",
		Amount: decimal.NewFromInt(50000), Date: time.Now(),
		Method: entity.PaymentMethodCash, ReceiptNumber: "RC-010",
	}

	data, err := uc.ReceiptPDF(context.Background(), "pay1")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 1, pdfGen.calls)
}

func TestPaymentReceiptPDF_PagoInexistente(t *testing.T) {
	uc, _, _, _, _ := buildPaymentUseCase(t)

	_, err := uc.ReceiptPDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
