package repositories

import (
	"comercial/internal/models"
)

// ReportRepository defines the read-only aggregation queries over committed
// purchases. Products and customers with zero sales are omitted (inner join).
type ReportRepository interface {
	SalesByProduct() ([]models.ProductSales, error)
	SalesByCustomer() ([]models.CustomerSales, error)
	GrandTotal() (float64, error)
}
