package services

import (
	"fmt"

	"comercial/internal/models"
	"comercial/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	purchases repositories.PurchaseRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, purchases repositories.PurchaseRepository) *ProductService {
	return &ProductService{
		repo:      repo,
		purchases: purchases,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:  input.Name,
		Price: *input.Price,
		Stock: input.Stock,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update; absent fields keep their values.
func (s *ProductService) UpdateProduct(id uint, input models.ProductUpdateInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product. Products referenced by purchase lines are
// kept: the delete is forbidden so historical line totals stay resolvable.
func (s *ProductService) DeleteProduct(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	count, err := s.purchases.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &models.ConstraintError{Message: fmt.Sprintf("produto %d aparece em %d item(ns) de compra e não pode ser excluído", id, count)}
	}
	return s.repo.Delete(id)
}

// CountProducts returns the number of registered products.
func (s *ProductService) CountProducts() (int64, error) {
	return s.repo.Count()
}

// DecrementStock handles the direct stock decrement endpoint. The repository
// guard keeps the stock from ever going negative.
func (s *ProductService) DecrementStock(id uint, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, &models.ValidationError{Message: "quantidade deve ser maior que zero"}
	}
	if err := s.repo.DecrementStock(id, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}
