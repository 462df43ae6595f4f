package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// UnitHandler maneja las peticiones HTTP para Unit (protegido).
type UnitHandler struct {
	uc *usecase.UnitUseCase
}

// NewUnitHandler construye el handler.
func NewUnitHandler(uc *usecase.UnitUseCase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar unidad
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
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
// @Summary      Obtener unidad por ID
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.UnitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/units/{id} [get]
func (h *UnitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar unidades
// @Description  Con property filtra por propiedad; sin él lista todas con paginación.
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        property  query  string  false  "ID de la propiedad"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.UnitListResponse
// @Router       /api/units [get]
func (h *UnitHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("property"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar unidad
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.UpdateUnitRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{id} [put]
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}
