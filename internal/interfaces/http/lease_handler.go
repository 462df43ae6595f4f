package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// LeaseHandler maneja las peticiones HTTP para Lease (protegido).
type LeaseHandler struct {
	uc *usecase.LeaseUseCase
}

// NewLeaseHandler construye el handler.
func NewLeaseHandler(uc *usecase.LeaseUseCase) *LeaseHandler {
	return &LeaseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato de arrendamiento
// @Description  Crea el contrato y marca la unidad como ocupada en la misma transacción.
// @Tags         leases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeaseRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.LeaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leases [post]
func (h *LeaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Prefill godoc
// @Summary      Valores sugeridos para un contrato nuevo
// @Description  Devuelve renta, depósito y vigencia sugeridos a partir de la unidad.
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        unit  query  string  true  "ID de la unidad"
// @Success      200   {object}  dto.LeasePrefillResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leases/new [get]
func (h *LeaseHandler) Prefill(c *fiber.Ctx) error {
	unitID := c.Query("unit")
	if unitID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_UNIT", Message: "query param unit es requerido"})
	}
	out, err := h.uc.Prefill(unitID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener contrato por ID
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.LeaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leases/{id} [get]
func (h *LeaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contratos
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.LeaseListResponse
// @Router       /api/leases [get]
func (h *LeaseHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato
// @Description  Incluye el cambio manual de estado (active/expiring/terminated).
// @Tags         leases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateLeaseRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.LeaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leases/{id} [put]
func (h *LeaseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}
