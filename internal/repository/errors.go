package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("SKU already exists")
	ErrInvalidQuantity = errors.New("quantity must be zero or greater")
)

// isUniqueViolation recognises a unique constraint failure from any supported driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "SQLSTATE 23505") || // postgres
		strings.Contains(msg, "duplicate key value")
}
