package repositories

import (
	"comercial/internal/models"
)

// PurchaseRepository defines the interface for purchase data access.
// Purchases are created only through the purchase transaction and are
// immutable afterwards, so there is no update or delete.
type PurchaseRepository interface {
	Create(purchase *models.Purchase) error
	GetAllWithItems() ([]models.Purchase, error)
	Count() (int64, error)
	CountByCustomer(customerID uint) (int64, error)
	CountByProduct(productID uint) (int64, error)
}
