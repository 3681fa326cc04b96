package menu

import "errors"

var (
	// ErrEmptyOrder order names no beverage
	ErrEmptyOrder = errors.New("order is empty")

	// ErrUnknownBeverage beverage is not on the menu
	ErrUnknownBeverage = errors.New("unknown beverage")

	// ErrUnknownCondiment condiment is not on the menu
	ErrUnknownCondiment = errors.New("unknown condiment")
)
