package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// TicketHandler maneja las peticiones HTTP para MaintenanceTicket (protegido).
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir ticket de mantenimiento
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Datos del ticket"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
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
// @Summary      Obtener ticket por ID
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ticket"
// @Success      200  {object}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [get]
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ticket no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tickets
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TicketListResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ticket
// @Description  Actualización parcial: estado, prioridad, técnico asignado.
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ticket"
// @Param        body  body  dto.UpdateTicketRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TicketResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [patch]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ticket no encontrado"})
	}
	return c.JSON(out)
}
