package handler

import (
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves the dashboard figures and the category report.
type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GET /api/v1/dashboard/stats
func (h *ReportHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.reports.GetDashboardStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// StockMovement returns units in and out per day for the last ?days
// (default 7, at most a year).
// GET /api/v1/dashboard/stock-movement
func (h *ReportHandler) StockMovement(c *fiber.Ctx) error {
	series, err := h.reports.GetStockMovement(c.QueryInt("days", 7))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"days": len(series), "data": series})
}

// GET /api/v1/reports/categories
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	summary, err := h.reports.CategoryReport()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
