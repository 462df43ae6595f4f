package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// PropertyHandler maneja las peticiones HTTP para Property (protegido).
type PropertyHandler struct {
	uc *usecase.PropertyUseCase
}

// NewPropertyHandler construye el handler.
func NewPropertyHandler(uc *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar propiedad
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePropertyRequest  true  "Datos de la propiedad"
// @Success      201   {object}  dto.PropertyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener propiedad por ID
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la propiedad"
// @Success      200  {object}  dto.PropertyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propiedad no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar propiedades
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PropertyListResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar propiedad
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la propiedad"
// @Param        body  body  dto.UpdatePropertyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PropertyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [put]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propiedad no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar propiedad
// @Description  Elimina la propiedad y sus unidades en cascada.
// @Tags         properties
// @Security     Bearer
// @Param        id  path  string  true  "ID de la propiedad"
// @Success      204
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
