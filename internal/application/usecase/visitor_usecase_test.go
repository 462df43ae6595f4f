package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

func buildVisitorUseCase(t *testing.T) (*usecase.VisitorUseCase, *fakeVisitorRepo, *fakeUnitRepo) {
	t.Helper()
	visitorRepo := newFakeVisitorRepo()
	unitRepo := newFakeUnitRepo()
	unitRepo.units["u1"] = &entity.Unit{
		ID: "u1", PropertyID: "p1", UnitNumber: "101",
		UnitType: entity.UnitType1BR, Status: entity.UnitStatusOccupied,
	}
	return usecase.NewVisitorUseCase(visitorRepo, unitRepo), visitorRepo, unitRepo
}

func TestVisitorCreate_EntradaConHoraDelServidor(t *testing.T) {
	uc, visitorRepo, _ := buildVisitorUseCase(t)

	before := time.Now()
	resp, err := uc.Create(dto.CreateVisitorRequest{
		Name:              "Carlos Pérez",
		UnitID:            "u1",
		SecurityGuardName: "Guardia Díaz",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.CheckedIn, "recién ingresado queda dentro del predio")
	assert.Nil(t, resp.ExitTime)
	assert.False(t, resp.EntryTime.Before(before), "sin hora explícita se usa la del servidor")
	assert.Len(t, visitorRepo.visitors, 1)
}

func TestVisitorCreate_UnidadInexistente(t *testing.T) {
	uc, _, _ := buildVisitorUseCase(t)

	_, err := uc.Create(dto.CreateVisitorRequest{
		Name:   "Carlos Pérez",
		UnitID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVisitorCheckout(t *testing.T) {
	uc, visitorRepo, _ := buildVisitorUseCase(t)
	visitorRepo.visitors["v1"] = &entity.Visitor{
		ID: "v1", Name: "Carlos Pérez", UnitID: "u1",
		EntryTime: time.Now().Add(-2 * time.Hour),
	}

	resp, err := uc.Checkout("v1")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.False(t, resp.CheckedIn)
	require.NotNil(t, resp.ExitTime)
}

// Registrar dos salidas no es válido.
func TestVisitorCheckout_SalidaDuplicada(t *testing.T) {
	uc, visitorRepo, _ := buildVisitorUseCase(t)
	exit := time.Now().Add(-1 * time.Hour)
	visitorRepo.visitors["v1"] = &entity.Visitor{
		ID: "v1", Name: "Carlos Pérez", UnitID: "u1",
		EntryTime: time.Now().Add(-2 * time.Hour),
		ExitTime:  &exit,
	}

	_, err := uc.Checkout("v1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut)
}

func TestVisitorCheckout_VisitaInexistente(t *testing.T) {
	uc, _, _ := buildVisitorUseCase(t)

	resp, err := uc.Checkout("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp, "visita inexistente se resuelve como 404 en el handler")
}
