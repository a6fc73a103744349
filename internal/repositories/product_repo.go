package repositories

import (
	"comercial/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
	// DecrementStock subtracts quantity from the product's stock. It fails
	// without touching the row when the remaining stock would go negative.
	DecrementStock(id uint, quantity int) error
}
