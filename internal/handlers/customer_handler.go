package handlers

import (
	"log"

	"comercial/internal/models"
	"comercial/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/clientes")
	customerRoutes.Get("/", h.HandleGetCustomers)
	customerRoutes.Get("/count", h.HandleCountCustomers)
	customerRoutes.Get("/:id", h.HandleGetCustomerByID)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Put("/:id", h.HandleUpdateCustomer)
	customerRoutes.Delete("/:id", h.HandleDeleteCustomer)
}

// HandleGetCustomers retrieves all customers.
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		log.Printf("Error getting all customers: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(customers)
}

// HandleGetCustomerByID retrieves a single customer by its ID.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(customer)
}

// HandleCreateCustomer creates a new customer.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var input models.CustomerInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing customer request body: %v", err)
		return errorJSON(c, &models.ValidationError{Message: "corpo da requisição inválido"})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	customer, err := h.service.CreateCustomer(input)
	if err != nil {
		log.Printf("Error creating customer: %v", err)
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer updates an existing customer. Absent fields keep
// their current values.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	var input models.CustomerUpdateInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing customer update body: %v", err)
		return errorJSON(c, &models.ValidationError{Message: "corpo da requisição inválido"})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	customer, err := h.service.UpdateCustomer(id, input)
	if err != nil {
		log.Printf("Error updating customer %d: %v", id, err)
		return errorJSON(c, err)
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer deletes a customer. Customers with purchase history
// cannot be deleted.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.service.DeleteCustomer(id); err != nil {
		log.Printf("Error deleting customer %d: %v", id, err)
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"mensagem": "Cliente excluído com sucesso",
	})
}

// HandleCountCustomers returns the number of registered customers.
func (h *CustomerHandler) HandleCountCustomers(c *fiber.Ctx) error {
	count, err := h.service.CountCustomers()
	if err != nil {
		log.Printf("Error counting customers: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"total": count,
	})
}
