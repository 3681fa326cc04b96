package beverage

import "errors"

var (
	// ErrNilBeverage a condiment was asked to wrap a nil Beverage
	ErrNilBeverage = errors.New("beverage is nil")

	// ErrNegativePrice a price below zero
	ErrNegativePrice = errors.New("price is negative")

	// ErrPriceOutOfRange a dollar amount that does not fit in a Price
	ErrPriceOutOfRange = errors.New("price is out of range")

	// ErrEmptyName an item without a name
	ErrEmptyName = errors.New("item name is empty")
)
