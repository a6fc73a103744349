package repositories

// TxRepositories bundles the repositories bound to one transaction.
type TxRepositories interface {
	Customers() CustomerRepository
	Products() ProductRepository
	Purchases() PurchaseRepository
}

// UnitOfWork runs a function against a transactional repository bundle.
// The writes made inside fn are committed together when fn returns nil and
// rolled back together when it returns an error.
type UnitOfWork interface {
	Execute(fn func(tx TxRepositories) error) error
}
