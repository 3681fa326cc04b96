package menu

import (
	"fmt"

	"github.com/go-leo/starbuzz/beverage"
)

type options struct {
	Prices beverage.PriceTable
	err    error
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.Prices.Validate(); err != nil {
		o.err = fmt.Errorf("menu: invalid prices: %w", err)
	}
	o.Prices = beverage.DefaultPrices().Merge(o.Prices)
	return o
}

type Option func(*options)

// Prices overrides the built-in prices. Items missing from table keep their built-in price.
func Prices(table beverage.PriceTable) Option {
	return func(o *options) {
		o.Prices = table
	}
}
