package beverage

type options struct {
	Prices PriceTable
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Prices == nil {
		o.Prices = defaultPrices
	}
	return o
}

// price falls back to the built-in price when the table has no entry for name.
func (o *options) price(name string) Price {
	if price, ok := o.Prices.Lookup(name); ok {
		return price
	}
	return defaultPrices[name]
}

type Option func(*options)

// Prices sets the price table items are priced from.
func Prices(table PriceTable) Option {
	return func(o *options) {
		o.Prices = table
	}
}
