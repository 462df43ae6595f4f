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

func buildLeaseUseCase(t *testing.T) (*usecase.LeaseUseCase, *fakeLeaseRepo, *fakeUnitRepo, *fakeTenantRepo, *fakeTxRunner) {
	t.Helper()
	leaseRepo := newFakeLeaseRepo()
	unitRepo := newFakeUnitRepo()
	tenantRepo := newFakeTenantRepo()
	tx := &fakeTxRunner{leaseRepo: leaseRepo, unitRepo: unitRepo}
	uc := usecase.NewLeaseUseCase(leaseRepo, unitRepo, tenantRepo, tx)
	return uc, leaseRepo, unitRepo, tenantRepo, tx
}

func seedTenantAndUnit(tenantRepo *fakeTenantRepo, unitRepo *fakeUnitRepo, unitStatus string) {
	tenantRepo.tenants["t1"] = &entity.Tenant{
		ID: "t1", FirstName: "Ana", LastName: "Mora",
		IDPassportNumber: "CC-100", Status: entity.TenantStatusActive,
	}
	unitRepo.units["u1"] = &entity.Unit{
		ID: "u1", PropertyID: "p1", UnitNumber: "101",
		UnitType: entity.UnitType1BR, Status: unitStatus,
		RentAmount:    decimal.NewFromInt(50000),
		DepositAmount: decimal.NewFromInt(100000),
	}
}

// Crear un contrato deja la unidad ocupada y el contrato activo, todo dentro
// del runner transaccional.
func TestLeaseCreate_MarcaUnidadOcupada(t *testing.T) {
	uc, leaseRepo, unitRepo, tenantRepo, tx := buildLeaseUseCase(t)
	seedTenantAndUnit(tenantRepo, unitRepo, entity.UnitStatusVacant)

	resp, err := uc.Create(context.Background(), dto.CreateLeaseRequest{
		TenantID:    "t1",
		UnitID:      "u1",
		StartDate:   "2026-03-01",
		EndDate:     "2027-03-01",
		MonthlyRent: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.LeaseStatusActive, resp.Status)
	assert.Equal(t, "monthly", resp.PaymentFrequency, "frecuencia por defecto")
	assert.Equal(t, 1, tx.runs, "la creación debe pasar por la transacción")
	assert.Equal(t, entity.UnitStatusOccupied, unitRepo.units["u1"].Status)
	assert.Len(t, leaseRepo.leases, 1)
}

// La unidad pasa a ocupada sin importar su estado previo, incluso en
// mantenimiento.
func TestLeaseCreate_UnidadEnMantenimientoPasaAOcupada(t *testing.T) {
	uc, _, unitRepo, tenantRepo, _ := buildLeaseUseCase(t)
	seedTenantAndUnit(tenantRepo, unitRepo, entity.UnitStatusMaintenance)

	_, err := uc.Create(context.Background(), dto.CreateLeaseRequest{
		TenantID:  "t1",
		UnitID:    "u1",
		StartDate: "2026-03-01",
		EndDate:   "2027-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UnitStatusOccupied, unitRepo.units["u1"].Status)
}

// Si la escritura del contrato falla, la unidad no cambia de estado: el
// callback corta antes del UpdateStatus.
func TestLeaseCreate_FallaDelRepo_NoTocaLaUnidad(t *testing.T) {
	uc, leaseRepo, unitRepo, tenantRepo, _ := buildLeaseUseCase(t)
	seedTenantAndUnit(tenantRepo, unitRepo, entity.UnitStatusVacant)
	leaseRepo.failCreate = true

	_, err := uc.Create(context.Background(), dto.CreateLeaseRequest{
		TenantID:  "t1",
		UnitID:    "u1",
		StartDate: "2026-03-01",
		EndDate:   "2027-03-01",
	})
	require.Error(t, err)
	assert.Equal(t, entity.UnitStatusVacant, unitRepo.units["u1"].Status)
}

func TestLeaseCreate_ValidacionDeFechas(t *testing.T) {
	uc, _, unitRepo, tenantRepo, _ := buildLeaseUseCase(t)
	seedTenantAndUnit(tenantRepo, unitRepo, entity.UnitStatusVacant)

	_, err := uc.Create(context.Background(), dto.CreateLeaseRequest{
		TenantID:  "t1",
		UnitID:    "u1",
		StartDate: "01/03/2026", // formato equivocado
		EndDate:   "2027-03-01",
	})
	fe, ok := domain.AsFieldErrors(err)
	require.True(t, ok, "debe ser un error de validación por campos")
	assert.Contains(t, fe, "start_date")

	_, err = uc.Create(context.Background(), dto.CreateLeaseRequest{
		TenantID:  "t1",
		UnitID:    "u1",
		StartDate: "2027-03-01",
		EndDate:   "2026-03-01", // termina antes de empezar
	})
	fe, ok = domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "end_date")
}

func TestLeaseCreate_InquilinoInexistente(t *testing.T) {
	uc, _, unitRepo, tenantRepo, _ := buildLeaseUseCase(t)
	seedTenantAndUnit(tenantRepo, unitRepo, entity.UnitStatusVacant)

	_, err := uc.Create(context.Background(), dto.CreateLeaseRequest{
		TenantID:  "no-existe",
		UnitID:    "u1",
		StartDate: "2026-03-01",
		EndDate:   "2027-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El prefill del formulario toma renta y depósito de la unidad y sugiere un
// año de vigencia desde hoy.
func TestLeasePrefill_DesdeLaUnidad(t *testing.T) {
	uc, _, unitRepo, tenantRepo, _ := buildLeaseUseCase(t)
	seedTenantAndUnit(tenantRepo, unitRepo, entity.UnitStatusVacant)

	resp, err := uc.Prefill("u1")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "u1", resp.UnitID)
	assert.Equal(t, "101", resp.UnitNumber)
	assert.True(t, resp.MonthlyRent.Equal(decimal.NewFromInt(50000)))
	assert.True(t, resp.DepositAmount.Equal(decimal.NewFromInt(100000)))

	start, err := time.Parse(dto.DateLayout, resp.StartDate)
	require.NoError(t, err)
	end, err := time.Parse(dto.DateLayout, resp.EndDate)
	require.NoError(t, err)
	assert.Equal(t, start.AddDate(1, 0, 0), end, "vigencia sugerida de un año")
}

func TestLeasePrefill_UnidadInexistente(t *testing.T) {
	uc, _, _, _, _ := buildLeaseUseCase(t)

	resp, err := uc.Prefill("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp, "unidad inexistente se resuelve como 404 en el handler")
}
