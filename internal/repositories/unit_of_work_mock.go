package repositories

// MockUnitOfWork runs the function directly over the in-memory repositories.
// The purchase flow validates every line before its first write, so the tests
// that use this mock never need a rollback; transactional rollback itself is
// covered by the GORM implementation.
type MockUnitOfWork struct {
	CustomerRepo CustomerRepository
	ProductRepo  ProductRepository
	PurchaseRepo PurchaseRepository
}

// NewMockUnitOfWork creates a MockUnitOfWork over fresh in-memory repositories.
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		CustomerRepo: NewMockCustomerRepository(),
		ProductRepo:  NewMockProductRepository(),
		PurchaseRepo: NewMockPurchaseRepository(),
	}
}

// Execute implements UnitOfWork.
func (u *MockUnitOfWork) Execute(fn func(tx TxRepositories) error) error {
	return fn(u)
}

func (u *MockUnitOfWork) Customers() CustomerRepository { return u.CustomerRepo }
func (u *MockUnitOfWork) Products() ProductRepository   { return u.ProductRepo }
func (u *MockUnitOfWork) Purchases() PurchaseRepository { return u.PurchaseRepo }
