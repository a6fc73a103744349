package models

import "time"

// Purchase is the header of a committed purchase. It exclusively owns its
// lines: they are created together inside the purchase transaction and are
// immutable afterwards.
type Purchase struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CustomerID uint           `json:"cliente_id" gorm:"index;not null"`
	Customer   Customer       `json:"-" gorm:"foreignKey:CustomerID"`
	Total      float64        `json:"total" gorm:"not null"`
	Date       time.Time      `json:"data" gorm:"not null"`
	Items      []PurchaseLine `json:"itens" gorm:"foreignKey:PurchaseID"`
	CreatedAt  time.Time      `json:"-"`
}

// PurchaseLine is one (product, quantity) entry of a purchase. Total captures
// quantity times the product's unit price at the time of the purchase.
type PurchaseLine struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	PurchaseID uint    `json:"compra_id" gorm:"index;not null"`
	ProductID  uint    `json:"produto_id" gorm:"index;not null"`
	Product    Product `json:"-" gorm:"foreignKey:ProductID"`
	Quantity   int     `json:"quantidade" gorm:"not null"`
	Total      float64 `json:"total" gorm:"not null"`
}
