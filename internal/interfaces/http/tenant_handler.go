package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// TenantHandler maneja las peticiones HTTP para Tenant (protegido).
type TenantHandler struct {
	uc *usecase.TenantUseCase
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *usecase.TenantUseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar inquilino
// @Tags         tenants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTenantRequest  true  "Datos del inquilino"
// @Success      201   {object}  dto.TenantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tenants [post]
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener inquilino por ID
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inquilino"
// @Success      200  {object}  dto.TenantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenants/{id} [get]
func (h *TenantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inquilino no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar inquilinos
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TenantListResponse
// @Router       /api/tenants [get]
func (h *TenantHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar inquilino
// @Tags         tenants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del inquilino"
// @Param        body  body  dto.UpdateTenantRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TenantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tenants/{id} [put]
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inquilino no encontrado"})
	}
	return c.JSON(out)
}
