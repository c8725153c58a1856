package models

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrCustomerDetailsRequired is returned when an order names neither an
	// existing customer id nor a name/phone pair.
	ErrCustomerDetailsRequired = errors.New("customer name and phone are required")

	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidDiscountType  = errors.New("invalid discount type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// InsufficientStockError carries enough detail for the caller to adjust the
// request (fewer units) and retry.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s. Available: %d, Requested: %d",
		e.ProductName, e.Available, e.Requested)
}

// StockConsistencyError means a concurrent deduction slipped past the
// availability check and the post-adjustment re-read saw a negative stock.
// The surrounding transaction must abort in full.
type StockConsistencyError struct {
	ProductName string
}

func (e *StockConsistencyError) Error() string {
	return fmt.Sprintf("stock became negative for product: %s", e.ProductName)
}
