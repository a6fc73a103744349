package models

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s com ID %d não encontrado", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for the given resource name and id.
func NewNotFound(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError indicates a missing or malformed required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConstraintError indicates a store constraint was violated, such as a
// duplicate email or a delete of an entity still referenced by purchases.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

// StockShortage describes one product whose available stock cannot cover the
// requested quantity.
type StockShortage struct {
	ProductID uint
	Name      string
	Available int
	Requested int
}

// InsufficientStockError aggregates every shortage found while validating a
// purchase, so the caller sees all failing lines at once.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (disponível: %d, solicitado: %d)", s.Name, s.Available, s.Requested))
	}
	return "estoque insuficiente para: " + strings.Join(parts, "; ")
}
