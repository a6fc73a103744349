package repositories

import (
	"sort"
	"sync"

	"comercial/internal/models"
)

// MockPurchaseRepository is an in-memory implementation of PurchaseRepository.
type MockPurchaseRepository struct {
	purchases  map[uint]models.Purchase
	nextID     uint
	nextLineID uint
	mu         sync.RWMutex
}

// NewMockPurchaseRepository creates a new instance of MockPurchaseRepository.
func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{
		purchases:  make(map[uint]models.Purchase),
		nextID:     1,
		nextLineID: 1,
	}
}

// Create stores a purchase header with its lines, assigning ids like the
// store would.
func (r *MockPurchaseRepository) Create(purchase *models.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if purchase.ID == 0 {
		purchase.ID = r.nextID
		r.nextID++
	}
	for i := range purchase.Items {
		if purchase.Items[i].ID == 0 {
			purchase.Items[i].ID = r.nextLineID
			r.nextLineID++
		}
		purchase.Items[i].PurchaseID = purchase.ID
	}
	stored := *purchase
	stored.Items = append([]models.PurchaseLine(nil), purchase.Items...)
	r.purchases[purchase.ID] = stored
	return nil
}

// GetAllWithItems returns all purchases, newest first.
func (r *MockPurchaseRepository) GetAllWithItems() ([]models.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	purchaseList := make([]models.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		purchaseList = append(purchaseList, p)
	}
	sort.Slice(purchaseList, func(i, j int) bool {
		if !purchaseList[i].Date.Equal(purchaseList[j].Date) {
			return purchaseList[i].Date.After(purchaseList[j].Date)
		}
		return purchaseList[i].ID > purchaseList[j].ID
	})
	return purchaseList, nil
}

// Count returns the number of purchases.
func (r *MockPurchaseRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.purchases)), nil
}

// CountByCustomer returns how many purchases reference the given customer.
func (r *MockPurchaseRepository) CountByCustomer(customerID uint) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, p := range r.purchases {
		if p.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

// CountByProduct returns how many purchase lines reference the given product.
func (r *MockPurchaseRepository) CountByProduct(productID uint) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, p := range r.purchases {
		for _, line := range p.Items {
			if line.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}
