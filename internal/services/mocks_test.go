package services_test

import (
	"comercial/internal/models"

	"github.com/stretchr/testify/mock"
)

// Testify mocks for the repository interfaces, shared by the service tests.

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	args := m.Called()
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(id uint, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(purchase *models.Purchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) GetAllWithItems() ([]models.Purchase, error) {
	args := m.Called()
	return args.Get(0).([]models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) CountByCustomer(customerID uint) (int64, error) {
	args := m.Called(customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) CountByProduct(productID uint) (int64, error) {
	args := m.Called(productID)
	return args.Get(0).(int64), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SalesByProduct() ([]models.ProductSales, error) {
	args := m.Called()
	return args.Get(0).([]models.ProductSales), args.Error(1)
}

func (m *MockReportRepository) SalesByCustomer() ([]models.CustomerSales, error) {
	args := m.Called()
	return args.Get(0).([]models.CustomerSales), args.Error(1)
}

func (m *MockReportRepository) GrandTotal() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}
