package handlers

import (
	"log"

	"comercial/internal/models"
	"comercial/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/produtos")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/count", h.HandleCountProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id/estoque", h.HandleDecrementStock)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return errorJSON(c, &models.ValidationError{Message: "corpo da requisição inválido"})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product. Absent fields keep their
// current values.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	var input models.ProductUpdateInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return errorJSON(c, &models.ValidationError{Message: "corpo da requisição inválido"})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	product, err := h.service.UpdateProduct(id, input)
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product. Products referenced by purchase
// lines cannot be deleted.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.service.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"mensagem": "Produto excluído com sucesso",
	})
}

// HandleDecrementStock subtracts a quantity from the product's stock.
func (h *ProductHandler) HandleDecrementStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	var input models.StockUpdateInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing stock update body: %v", err)
		return errorJSON(c, &models.ValidationError{Message: "corpo da requisição inválido"})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	product, err := h.service.DecrementStock(id, input.Quantity)
	if err != nil {
		log.Printf("Error updating stock for product %d: %v", id, err)
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"mensagem": "Estoque atualizado com sucesso",
		"produto":  product,
	})
}

// HandleCountProducts returns the number of registered products.
func (h *ProductHandler) HandleCountProducts(c *fiber.Ctx) error {
	count, err := h.service.CountProducts()
	if err != nil {
		log.Printf("Error counting products: %v", err)
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"total": count,
	})
}
