package services

import (
	"fmt"

	"comercial/internal/models"
	"comercial/internal/repositories"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo      repositories.CustomerRepository
	purchases repositories.PurchaseRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository, purchases repositories.PurchaseRepository) *CustomerService {
	return &CustomerService{
		repo:      repo,
		purchases: purchases,
	}
}

// GetAllCustomers retrieves all customers.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.repo.GetAll()
}

// GetCustomerByID retrieves a single customer by its ID.
func (s *CustomerService) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.repo.GetByID(id)
}

// CreateCustomer creates a new customer after checking the email shape.
func (s *CustomerService) CreateCustomer(input models.CustomerInput) (*models.Customer, error) {
	if !models.ValidEmail(input.Email) {
		return nil, &models.ValidationError{Message: "nome e email válidos são obrigatórios"}
	}
	customer := &models.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer applies a partial update; absent fields keep their values.
func (s *CustomerService) UpdateCustomer(id uint, input models.CustomerUpdateInput) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		if !models.ValidEmail(*input.Email) {
			return nil, &models.ValidationError{Message: "email inválido"}
		}
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Customers referenced by purchases are
// kept: purchase history is immutable, so the delete is forbidden instead of
// cascading or nullifying.
func (s *CustomerService) DeleteCustomer(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	count, err := s.purchases.CountByCustomer(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &models.ConstraintError{Message: fmt.Sprintf("cliente %d possui %d compra(s) registrada(s) e não pode ser excluído", id, count)}
	}
	return s.repo.Delete(id)
}

// CountCustomers returns the number of registered customers.
func (s *CustomerService) CountCustomers() (int64, error) {
	return s.repo.Count()
}
