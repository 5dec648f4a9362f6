package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error matches exactly one of these with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInsufficientStock  = errors.New("insufficient stock amount")
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	ErrAmountOutOfRange   = errors.New("amount out of range")
)

var (
	ErrItemNotFound = fmt.Errorf("item %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrUserExists   = fmt.Errorf("user %w", ErrAlreadyExists)
)

// InsufficientStockError is returned when an adjustment would drive an item's
// amount below zero.
type InsufficientStockError struct {
	Current   int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s. current: %d, requested: %d", ErrInsufficientStock, e.Current, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// IsDomainError reports whether err is an expected business-rule failure as
// opposed to an infrastructure failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrAmountOutOfRange)
}
