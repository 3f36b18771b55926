package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/obra-offline/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard y de inteligencia financiera.
type DashboardHandler struct {
	stats  *appanalytics.DashboardUseCase
	trends *appanalytics.TrendsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(stats *appanalytics.DashboardUseCase, trends *appanalytics.TrendsUseCase) *DashboardHandler {
	return &DashboardHandler{stats: stats, trends: trends}
}

// GetStats devuelve ingresos, gastos, resultado neto, proyectos activos y
// empleados activos de una empresa.
// GET /api/dashboard/stats?companyId=1
//
// companyId es opcional; por defecto 1 (la empresa sembrada).
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	companyID, err := queryInt64(c, "companyId")
	if err != nil {
		return badQuery(c, err)
	}
	id := appanalytics.DefaultCompanyID
	if companyID != nil {
		id = *companyID
	}
	out, err := h.stats.GetStats(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetFinancialTrends devuelve la serie de tendencias.
// GET /api/intelligence/financial-trends
//
// Documento fijo en modo offline (source = "static").
func (h *DashboardHandler) GetFinancialTrends(c *fiber.Ctx) error {
	return c.JSON(h.trends.GetFinancialTrends())
}
