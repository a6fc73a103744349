package repositories

import (
	"fmt"
	"sync"

	"comercial/internal/models"
)

// MockCustomerRepository is an in-memory implementation of CustomerRepository.
type MockCustomerRepository struct {
	customers map[uint]models.Customer
	nextID    uint
	mu        sync.RWMutex
}

// NewMockCustomerRepository creates a new instance of MockCustomerRepository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[uint]models.Customer),
		nextID:    1,
	}
}

// GetAll returns all customers.
func (r *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customerList := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customerList = append(customerList, c)
	}
	return customerList, nil
}

// GetByID returns a customer by its ID.
func (r *MockCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, models.NewNotFound("cliente", id)
	}
	return &customer, nil
}

// Create adds a new customer, enforcing the unique email constraint.
func (r *MockCustomerRepository) Create(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.customers {
		if existing.Email == customer.Email {
			return &models.ConstraintError{Message: fmt.Sprintf("email %s já cadastrado", customer.Email)}
		}
	}
	if customer.ID == 0 {
		customer.ID = r.nextID
		r.nextID++
	}
	r.customers[customer.ID] = *customer
	return nil
}

// Update modifies an existing customer.
func (r *MockCustomerRepository) Update(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customer.ID]; !ok {
		return models.NewNotFound("cliente", customer.ID)
	}
	for id, existing := range r.customers {
		if id != customer.ID && existing.Email == customer.Email {
			return &models.ConstraintError{Message: fmt.Sprintf("email %s já cadastrado", customer.Email)}
		}
	}
	r.customers[customer.ID] = *customer
	return nil
}

// Delete removes a customer by its ID.
func (r *MockCustomerRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return models.NewNotFound("cliente", id)
	}
	delete(r.customers, id)
	return nil
}

// Count returns the number of customers.
func (r *MockCustomerRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.customers)), nil
}
