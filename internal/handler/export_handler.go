package handler

import (
	"fmt"

	"go-inventario/internal/export"
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(s service.ExportService) *ExportHandler {
	return &ExportHandler{service: s}
}

func (h *ExportHandler) ProductsXLSX(c *fiber.Ctx) error {
	return h.send(c)(h.service.Products(export.ExtXLSX))
}

func (h *ExportHandler) ProductsPDF(c *fiber.Ctx) error {
	return h.send(c)(h.service.Products(export.ExtPDF))
}

func (h *ExportHandler) InventoryXLSX(c *fiber.Ctx) error {
	return h.send(c)(h.service.Inventory())
}

func (h *ExportHandler) ReportXLSX(c *fiber.Ctx) error {
	return h.send(c)(h.service.Report(export.ExtXLSX))
}

func (h *ExportHandler) ReportPDF(c *fiber.Ctx) error {
	return h.send(c)(h.service.Report(export.ExtPDF))
}

// send writes the file as an attachment download.
func (h *ExportHandler) send(c *fiber.Ctx) func(*service.ExportFile, error) error {
	return func(file *service.ExportFile, err error) error {
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, file.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
		return c.Send(file.Data)
	}
}
