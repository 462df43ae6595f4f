package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Propiedades-api/internal/application/analytics"
)

// DashboardHandler expone el snapshot del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Snapshot godoc
// @Summary      Snapshot del dashboard
// @Description  Indicadores financieros, de ocupación, contratos, mantenimiento y portería al instante actual.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSnapshotDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Snapshot(c *fiber.Ctx) error {
	out, err := h.uc.Snapshot(c.UserContext(), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
