package beverage

import (
	"github.com/go-leo/starbuzz/decorator"
)

var (
	_ Beverage = CondimentDecorator{}
	_ Item     = CondimentDecorator{}
	_ Wrapper  = CondimentDecorator{}
)

// CondimentDecorator wraps a Beverage, adding a fixed price and a name to it.
type CondimentDecorator struct {
	beverage Beverage
	name     string
	price    Price
}

// NewCondiment wraps b in a condiment called name that costs price.
// It panics if b is nil or price is negative.
func NewCondiment(b Beverage, name string, price Price) CondimentDecorator {
	if b == nil {
		panic(ErrNilBeverage)
	}
	if price < 0 {
		panic(ErrNegativePrice)
	}
	return CondimentDecorator{beverage: b, name: name, price: price}
}

func (c CondimentDecorator) Name() string { return c.name }

func (c CondimentDecorator) Price() Price { return c.price }

func (c CondimentDecorator) Unwrap() Beverage { return c.beverage }

// Description appends the condiment name to the wrapped description.
func (c CondimentDecorator) Description() string {
	return c.beverage.Description() + ", " + c.name
}

// Cost adds the condiment price to the wrapped cost.
func (c CondimentDecorator) Cost() Price {
	return c.price + c.beverage.Cost()
}

func newCondiment(b Beverage, name string, opts []Option) CondimentDecorator {
	return NewCondiment(b, name, newOptions(opts...).price(name))
}

// Milk is a condiment.
type Milk struct{ CondimentDecorator }

// NewMilk wraps b in Milk. It panics if b is nil.
func NewMilk(b Beverage, opts ...Option) Milk {
	return Milk{CondimentDecorator: newCondiment(b, MilkName, opts)}
}

// Mocha is a condiment.
type Mocha struct{ CondimentDecorator }

// NewMocha wraps b in Mocha. It panics if b is nil.
func NewMocha(b Beverage, opts ...Option) Mocha {
	return Mocha{CondimentDecorator: newCondiment(b, MochaName, opts)}
}

// Soy is a condiment.
type Soy struct{ CondimentDecorator }

// NewSoy wraps b in Soy. It panics if b is nil.
func NewSoy(b Beverage, opts ...Option) Soy {
	return Soy{CondimentDecorator: newCondiment(b, SoyName, opts)}
}

// Whip is a condiment.
type Whip struct{ CondimentDecorator }

// NewWhip wraps b in Whip. It panics if b is nil.
func NewWhip(b Beverage, opts ...Option) Whip {
	return Whip{CondimentDecorator: newCondiment(b, WhipName, opts)}
}

// WithCondiment returns a Decorator that wraps beverages in a condiment called name.
func WithCondiment(name string, price Price) decorator.Decorator[Beverage] {
	return decorator.DecoratorFunc[Beverage](func(b Beverage) Beverage {
		return NewCondiment(b, name, price)
	})
}

// WithMilk returns a Decorator that wraps beverages in Milk.
func WithMilk(opts ...Option) decorator.Decorator[Beverage] {
	return decorator.DecoratorFunc[Beverage](func(b Beverage) Beverage {
		return NewMilk(b, opts...)
	})
}

// WithMocha returns a Decorator that wraps beverages in Mocha.
func WithMocha(opts ...Option) decorator.Decorator[Beverage] {
	return decorator.DecoratorFunc[Beverage](func(b Beverage) Beverage {
		return NewMocha(b, opts...)
	})
}

// WithSoy returns a Decorator that wraps beverages in Soy.
func WithSoy(opts ...Option) decorator.Decorator[Beverage] {
	return decorator.DecoratorFunc[Beverage](func(b Beverage) Beverage {
		return NewSoy(b, opts...)
	})
}

// WithWhip returns a Decorator that wraps beverages in Whip.
func WithWhip(opts ...Option) decorator.Decorator[Beverage] {
	return decorator.DecoratorFunc[Beverage](func(b Beverage) Beverage {
		return NewWhip(b, opts...)
	})
}
