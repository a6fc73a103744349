package repositories

import (
	"fmt"

	"comercial/internal/models"

	"gorm.io/gorm"
)

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{
		db: db,
	}
}

// Create persists a purchase header together with all of its lines. GORM
// inserts the associated Items in the same statement batch, so header and
// lines share the surrounding transaction.
func (r *GORMPurchaseRepository) Create(purchase *models.Purchase) error {
	if err := r.db.Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GetAllWithItems retrieves the purchase history, newest first, with the
// customer and every line's product preloaded.
func (r *GORMPurchaseRepository) GetAllWithItems() ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Order("date DESC, id DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase history: %w", err)
	}
	return purchases, nil
}

// Count returns the number of committed purchases.
func (r *GORMPurchaseRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Purchase{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count purchases: %w", err)
	}
	return count, nil
}

// CountByCustomer returns how many purchases reference the given customer.
func (r *GORMPurchaseRepository) CountByCustomer(customerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Purchase{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count purchases for customer %d: %w", customerID, err)
	}
	return count, nil
}

// CountByProduct returns how many purchase lines reference the given product.
func (r *GORMPurchaseRepository) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PurchaseLine{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count purchase lines for product %d: %w", productID, err)
	}
	return count, nil
}
