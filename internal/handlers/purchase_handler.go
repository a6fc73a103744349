package handlers

import (
	"log"

	"comercial/internal/models"
	"comercial/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler handles HTTP requests for purchases.
type PurchaseHandler struct {
	service  *services.PurchaseService
	reports  *services.ReportService
	validate *validator.Validate
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(service *services.PurchaseService, reports *services.ReportService) *PurchaseHandler {
	return &PurchaseHandler{
		service:  service,
		reports:  reports,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the purchase routes with the Fiber app.
func (h *PurchaseHandler) RegisterRoutes(router fiber.Router) {
	purchaseRoutes := router.Group("/compras")
	purchaseRoutes.Get("/", h.HandleListPurchases)
	purchaseRoutes.Get("/count", h.HandleCountPurchases)
	purchaseRoutes.Post("/", h.HandleRegisterPurchase)
}

// HandleRegisterPurchase runs the purchase transaction for the requested
// customer and lines.
func (h *PurchaseHandler) HandleRegisterPurchase(c *fiber.Ctx) error {
	var input models.PurchaseInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing purchase request body: %v", err)
		return errorJSON(c, &models.ValidationError{Message: "requisição inválida"})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	purchase, err := h.service.RegisterPurchase(input)
	if err != nil {
		log.Printf("Error registering purchase: %v", err)
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensagem": "Compra registrada com sucesso",
		"id":       purchase.ID,
		"total":    purchase.Total,
	})
}

// HandleListPurchases retrieves the purchase history with expanded line
// items, newest first.
func (h *PurchaseHandler) HandleListPurchases(c *fiber.Ctx) error {
	history, err := h.reports.PurchaseHistory()
	if err != nil {
		log.Printf("Error listing purchases: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(history)
}

// HandleCountPurchases returns the number of committed purchases.
func (h *PurchaseHandler) HandleCountPurchases(c *fiber.Ctx) error {
	count, err := h.service.CountPurchases()
	if err != nil {
		log.Printf("Error counting purchases: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"total": count,
	})
}
