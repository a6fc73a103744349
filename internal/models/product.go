package models

import "time"

// Product represents a product in the store catalogue.
// Stock never goes negative through any committed transaction.
type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Price     float64   `json:"preco" gorm:"not null" validate:"gte=0"`
	Stock     int       `json:"estoque" gorm:"not null;default:0" validate:"gte=0"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
