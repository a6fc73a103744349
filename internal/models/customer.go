package models

import (
	"regexp"
	"time"
)

// Customer represents a registered customer of the store.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,email"`
	Phone     string    `json:"telefone" gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// emailPattern mirrors the address check used by the web boundary:
// something before the "@", something after it, and a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s looks like a deliverable email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
