package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// VisitorHandler maneja las peticiones HTTP de portería (protegido; accesible
// también para el rol guard).
type VisitorHandler struct {
	uc *usecase.VisitorUseCase
}

// NewVisitorHandler construye el handler.
func NewVisitorHandler(uc *usecase.VisitorUseCase) *VisitorHandler {
	return &VisitorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de visitante
// @Tags         visitors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitorRequest  true  "Datos de la visita"
// @Success      201   {object}  dto.VisitorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visitors [post]
func (h *VisitorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitorRequest
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
// @Summary      Obtener visita por ID
// @Tags         visitors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitors/{id} [get]
func (h *VisitorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar visitas
// @Tags         visitors
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.VisitorListResponse
// @Router       /api/visitors [get]
func (h *VisitorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Registrar salida del visitante
// @Tags         visitors
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/visitors/{id}/checkout [post]
func (h *VisitorHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visita no encontrada"})
	}
	return c.JSON(out)
}
