package handlers

import (
	"log"

	"comercial/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// ExportHandler handles the purchase-history download endpoints.
type ExportHandler struct {
	reports *services.ReportService
	exports *services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(reports *services.ReportService, exports *services.ExportService) *ExportHandler {
	return &ExportHandler{
		reports: reports,
		exports: exports,
	}
}

// RegisterRoutes registers the export routes with the Fiber app.
func (h *ExportHandler) RegisterRoutes(router fiber.Router) {
	exportRoutes := router.Group("/exportar/compras")
	exportRoutes.Get("/excel", h.HandleExportExcel)
	exportRoutes.Get("/pdf", h.HandleExportPDF)
}

// HandleExportExcel downloads the purchase history as a spreadsheet.
func (h *ExportHandler) HandleExportExcel(c *fiber.Ctx) error {
	rows, err := h.reports.ExportRows()
	if err != nil {
		log.Printf("Error collecting export rows: %v", err)
		return errorJSON(c, err)
	}
	data, err := h.exports.ExcelReport(rows)
	if err != nil {
		log.Printf("Error rendering spreadsheet: %v", err)
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="compras.xlsx"`)
	return c.Send(data)
}

// HandleExportPDF downloads the purchase history as a PDF.
func (h *ExportHandler) HandleExportPDF(c *fiber.Ctx) error {
	rows, err := h.reports.ExportRows()
	if err != nil {
		log.Printf("Error collecting export rows: %v", err)
		return errorJSON(c, err)
	}
	data, err := h.exports.PDFReport(rows)
	if err != nil {
		log.Printf("Error rendering PDF: %v", err)
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, pdfContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="compras.pdf"`)
	return c.Send(data)
}
