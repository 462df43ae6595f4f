package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
)

// PaymentHandler maneja las peticiones HTTP para Payment (protegido).
// Los pagos no tienen Update ni Delete.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pago de renta
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Prefill godoc
// @Summary      Valores sugeridos para un pago nuevo
// @Description  Devuelve el contrato activo del inquilino y su renta mensual.
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        tenant  query  string  true  "ID del inquilino"
// @Success      200     {object}  dto.PaymentPrefillResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/payments/new [get]
func (h *PaymentHandler) Prefill(c *fiber.Ctx) error {
	tenantID := c.Query("tenant")
	if tenantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TENANT", Message: "query param tenant es requerido"})
	}
	out, err := h.uc.Prefill(tenantID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inquilino no encontrado"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pago por ID
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pagos
// @Description  Con tenant filtra por inquilino.
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        tenant  query  string  false  "ID del inquilino"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.PaymentListResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("tenant"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo PDF del pago
// @Tags         payments
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pago"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	data, err := h.uc.ReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}
