package services

import (
	"comercial/internal/models"
	"comercial/internal/repositories"
)

// dateLayout is the dd/mm/yyyy rendering used by history and exports.
const dateLayout = "02/01/2006"

// ReportService builds the read-only sales projections.
type ReportService struct {
	reports   repositories.ReportRepository
	purchases repositories.PurchaseRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reports repositories.ReportRepository, purchases repositories.PurchaseRepository) *ReportService {
	return &ReportService{
		reports:   reports,
		purchases: purchases,
	}
}

// SalesByProduct returns total quantity sold per product.
func (s *ReportService) SalesByProduct() ([]models.ProductSales, error) {
	return s.reports.SalesByProduct()
}

// SalesByCustomer returns total spent per customer.
func (s *ReportService) SalesByCustomer() ([]models.CustomerSales, error) {
	return s.reports.SalesByCustomer()
}

// PurchaseHistory returns all purchases newest first, each expanded with its
// line items and the customer name.
func (s *ReportService) PurchaseHistory() ([]models.PurchaseSummary, error) {
	purchases, err := s.purchases.GetAllWithItems()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.PurchaseSummary, 0, len(purchases))
	for _, purchase := range purchases {
		items := make([]models.PurchaseLineSummary, 0, len(purchase.Items))
		for _, line := range purchase.Items {
			items = append(items, models.PurchaseLineSummary{
				Product:  line.Product.Name,
				Quantity: line.Quantity,
				Total:    line.Total,
			})
		}
		summaries = append(summaries, models.PurchaseSummary{
			ID:       purchase.ID,
			Customer: purchase.Customer.Name,
			Total:    purchase.Total,
			Date:     purchase.Date.Format(dateLayout),
			Items:    items,
		})
	}
	return summaries, nil
}

// GeneralReport combines both groupings with the grand total and the full
// purchase history.
func (s *ReportService) GeneralReport() (*models.GeneralReport, error) {
	byProduct, err := s.reports.SalesByProduct()
	if err != nil {
		return nil, err
	}
	byCustomer, err := s.reports.SalesByCustomer()
	if err != nil {
		return nil, err
	}
	grandTotal, err := s.reports.GrandTotal()
	if err != nil {
		return nil, err
	}
	history, err := s.PurchaseHistory()
	if err != nil {
		return nil, err
	}
	return &models.GeneralReport{
		SalesByProduct:  byProduct,
		SalesByCustomer: byCustomer,
		GrandTotal:      grandTotal,
		Purchases:       history,
	}, nil
}

// ExportRows flattens the purchase history to one row per purchase line, in
// the stable column order consumed by the export formatters.
func (s *ReportService) ExportRows() ([]models.ExportRow, error) {
	purchases, err := s.purchases.GetAllWithItems()
	if err != nil {
		return nil, err
	}

	var rows []models.ExportRow
	for _, purchase := range purchases {
		for _, line := range purchase.Items {
			rows = append(rows, models.ExportRow{
				Customer: purchase.Customer.Name,
				Product:  line.Product.Name,
				Quantity: line.Quantity,
				Total:    line.Total,
				Date:     purchase.Date.Format(dateLayout),
			})
		}
	}
	return rows, nil
}
