package repositories

import (
	"fmt"

	"comercial/internal/models"

	"gorm.io/gorm"
)

// GORMReportRepository is a GORM implementation of ReportRepository.
type GORMReportRepository struct {
	db *gorm.DB
}

// NewGORMReportRepository creates a new instance of GORMReportRepository.
func NewGORMReportRepository(db *gorm.DB) *GORMReportRepository {
	return &GORMReportRepository{
		db: db,
	}
}

// SalesByProduct sums sold quantities per product over all purchase lines.
func (r *GORMReportRepository) SalesByProduct() ([]models.ProductSales, error) {
	var sales []models.ProductSales
	err := r.db.Model(&models.PurchaseLine{}).
		Select("products.name AS product, SUM(purchase_lines.quantity) AS quantity_sold").
		Joins("JOIN products ON products.id = purchase_lines.product_id").
		Group("products.id, products.name").
		Order("products.name").
		Scan(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by product: %w", err)
	}
	return sales, nil
}

// SalesByCustomer sums purchase totals per customer over all purchases.
func (r *GORMReportRepository) SalesByCustomer() ([]models.CustomerSales, error) {
	var sales []models.CustomerSales
	err := r.db.Model(&models.Purchase{}).
		Select("customers.name AS customer, SUM(purchases.total) AS total_spent").
		Joins("JOIN customers ON customers.id = purchases.customer_id").
		Group("customers.id, customers.name").
		Order("customers.name").
		Scan(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by customer: %w", err)
	}
	return sales, nil
}

// GrandTotal sums the totals of every committed purchase, 0 when none exist.
func (r *GORMReportRepository) GrandTotal() (float64, error) {
	var total float64
	err := r.db.Model(&models.Purchase{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute grand total: %w", err)
	}
	return total, nil
}
