package handlers

import (
	"log"

	"comercial/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles HTTP requests for the sales reports.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/vendas/produto", h.HandleSalesByProduct)
	router.Get("/vendas/cliente", h.HandleSalesByCustomer)
	router.Get("/relatorio/geral", h.HandleGeneralReport)
}

// HandleSalesByProduct returns total quantity sold per product.
func (h *ReportHandler) HandleSalesByProduct(c *fiber.Ctx) error {
	sales, err := h.service.SalesByProduct()
	if err != nil {
		log.Printf("Error building sales-by-product report: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(sales)
}

// HandleSalesByCustomer returns total spent per customer.
func (h *ReportHandler) HandleSalesByCustomer(c *fiber.Ctx) error {
	sales, err := h.service.SalesByCustomer()
	if err != nil {
		log.Printf("Error building sales-by-customer report: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(sales)
}

// HandleGeneralReport returns both groupings, the grand total and the full
// purchase history.
func (h *ReportHandler) HandleGeneralReport(c *fiber.Ctx) error {
	report, err := h.service.GeneralReport()
	if err != nil {
		log.Printf("Error building general report: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(report)
}
