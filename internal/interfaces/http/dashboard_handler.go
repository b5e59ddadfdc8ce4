package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/application/usecase"
)

// DashboardHandler resúmenes del inicio del panel.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// dateRange lee startDate/endDate (YYYY-MM-DD). Sin parámetros: últimos 30
// días. El fin es exclusivo: se corre un día para incluir la fecha completa.
func dateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -30)
	end := now
	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// Counters godoc
// @Summary      Contadores de cotizaciones del scope
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CountersResponse
// @Router       /admin/invoices/datos/numeros [get]
func (h *DashboardHandler) Counters(c *fiber.Ctx) error {
	out, err := h.uc.Counters(c.Context(), ScopeCountry(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AmountsByDate godoc
// @Summary      Montos por día en un rango de fechas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200        {object}  dto.AmountsByDateResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /admin/invoices/montos/fechas [get]
func (h *DashboardHandler) AmountsByDate(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	out, err := h.uc.AmountsByDate(c.Context(), ScopeCountry(c), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SoldCount godoc
// @Summary      Ventas cerradas en un rango de fechas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200        {integer}  int64
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /admin/invoices/ventas/fechas [get]
func (h *DashboardHandler) SoldCount(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas, formato YYYY-MM-DD"})
	}
	total, err := h.uc.SoldCount(c.Context(), ScopeCountry(c), start, end)
	if err != nil {
		return respondError(c, err)
	}
	// El panel espera el número pelado, sin envolver en objeto.
	return c.JSON(total)
}
