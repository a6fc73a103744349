package repositories

import (
	"gorm.io/gorm"
)

// GORMUnitOfWork runs a function inside one gorm transaction, handing it
// repositories bound to that transaction. Commit happens when the function
// returns nil, rollback otherwise.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{
		db: db,
	}
}

// Execute implements UnitOfWork.
func (u *GORMUnitOfWork) Execute(fn func(tx TxRepositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepositories{
			customers: NewGORMCustomerRepository(tx),
			products:  NewGORMProductRepository(tx),
			purchases: NewGORMPurchaseRepository(tx),
		})
	})
}

type gormTxRepositories struct {
	customers CustomerRepository
	products  ProductRepository
	purchases PurchaseRepository
}

func (t *gormTxRepositories) Customers() CustomerRepository { return t.customers }
func (t *gormTxRepositories) Products() ProductRepository   { return t.products }
func (t *gormTxRepositories) Purchases() PurchaseRepository { return t.purchases }
