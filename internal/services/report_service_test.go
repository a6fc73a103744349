package services_test

import (
	"testing"
	"time"

	"comercial/internal/models"
	"comercial/internal/services"

	"github.com/stretchr/testify/assert"
)

func purchaseFixtures() []models.Purchase {
	newer := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	older := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	return []models.Purchase{
		{
			ID:         2,
			CustomerID: 1,
			Customer:   models.Customer{ID: 1, Name: "Maria Silva"},
			Total:      21.0,
			Date:       newer,
			Items: []models.PurchaseLine{
				{ID: 3, PurchaseID: 2, ProductID: 1, Product: models.Product{ID: 1, Name: "Produto A"}, Quantity: 3, Total: 15.0},
				{ID: 4, PurchaseID: 2, ProductID: 2, Product: models.Product{ID: 2, Name: "Produto B"}, Quantity: 2, Total: 6.0},
			},
		},
		{
			ID:         1,
			CustomerID: 2,
			Customer:   models.Customer{ID: 2, Name: "João Souza"},
			Total:      5.0,
			Date:       older,
			Items: []models.PurchaseLine{
				{ID: 1, PurchaseID: 1, ProductID: 1, Product: models.Product{ID: 1, Name: "Produto A"}, Quantity: 1, Total: 5.0},
			},
		},
	}
}

func TestReportService_PurchaseHistory(t *testing.T) {
	mockReports := new(MockReportRepository)
	mockPurchases := new(MockPurchaseRepository)
	service := services.NewReportService(mockReports, mockPurchases)

	mockPurchases.On("GetAllWithItems").Return(purchaseFixtures(), nil).Once()

	history, err := service.PurchaseHistory()
	assert.NoError(t, err)
	assert.Len(t, history, 2)

	// Newest first, date formatted dd/mm/yyyy, lines expanded with the
	// product names.
	assert.Equal(t, uint(2), history[0].ID)
	assert.Equal(t, "Maria Silva", history[0].Customer)
	assert.Equal(t, "10/03/2025", history[0].Date)
	assert.Len(t, history[0].Items, 2)
	assert.Equal(t, "Produto A", history[0].Items[0].Product)
	assert.Equal(t, 15.0, history[0].Items[0].Total)

	assert.Equal(t, uint(1), history[1].ID)
	assert.Equal(t, "01/02/2025", history[1].Date)
	mockPurchases.AssertExpectations(t)
}

func TestReportService_GeneralReport(t *testing.T) {
	mockReports := new(MockReportRepository)
	mockPurchases := new(MockPurchaseRepository)
	service := services.NewReportService(mockReports, mockPurchases)

	mockReports.On("SalesByProduct").Return([]models.ProductSales{
		{Product: "Produto A", QuantitySold: 4},
		{Product: "Produto B", QuantitySold: 2},
	}, nil).Once()
	mockReports.On("SalesByCustomer").Return([]models.CustomerSales{
		{Customer: "João Souza", TotalSpent: 5.0},
		{Customer: "Maria Silva", TotalSpent: 21.0},
	}, nil).Once()
	mockReports.On("GrandTotal").Return(26.0, nil).Once()
	mockPurchases.On("GetAllWithItems").Return(purchaseFixtures(), nil).Once()

	report, err := service.GeneralReport()
	assert.NoError(t, err)
	assert.Equal(t, 26.0, report.GrandTotal)
	assert.Len(t, report.SalesByProduct, 2)
	assert.Len(t, report.SalesByCustomer, 2)
	assert.Len(t, report.Purchases, 2)
	mockReports.AssertExpectations(t)
	mockPurchases.AssertExpectations(t)
}

func TestReportService_GeneralReport_Empty(t *testing.T) {
	mockReports := new(MockReportRepository)
	mockPurchases := new(MockPurchaseRepository)
	service := services.NewReportService(mockReports, mockPurchases)

	mockReports.On("SalesByProduct").Return([]models.ProductSales{}, nil).Once()
	mockReports.On("SalesByCustomer").Return([]models.CustomerSales{}, nil).Once()
	mockReports.On("GrandTotal").Return(0.0, nil).Once()
	mockPurchases.On("GetAllWithItems").Return([]models.Purchase{}, nil).Once()

	report, err := service.GeneralReport()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, report.GrandTotal)
	assert.Empty(t, report.SalesByProduct)
	assert.Empty(t, report.Purchases)
}

func TestReportService_ExportRows(t *testing.T) {
	mockReports := new(MockReportRepository)
	mockPurchases := new(MockPurchaseRepository)
	service := services.NewReportService(mockReports, mockPurchases)

	mockPurchases.On("GetAllWithItems").Return(purchaseFixtures(), nil).Once()

	rows, err := service.ExportRows()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	// One row per purchase line, repeating the purchase's customer and date.
	assert.Equal(t, models.ExportRow{
		Customer: "Maria Silva",
		Product:  "Produto A",
		Quantity: 3,
		Total:    15.0,
		Date:     "10/03/2025",
	}, rows[0])
	assert.Equal(t, "Maria Silva", rows[1].Customer)
	assert.Equal(t, "João Souza", rows[2].Customer)
	mockPurchases.AssertExpectations(t)
}
