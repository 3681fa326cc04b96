// Package menu turns orders written as names into beverages.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/maps"

	"github.com/go-leo/starbuzz/beverage"
	"github.com/go-leo/starbuzz/decorator"
	"github.com/go-leo/starbuzz/factory"
)

// Order names a base beverage and the condiments to wrap it in, innermost first.
type Order struct {
	Beverage   string   `json:"beverage"`
	Condiments []string `json:"condiments,omitempty"`
}

func (o Order) String() string {
	return strings.Join(append([]string{o.Beverage}, o.Condiments...), ", ")
}

// ParseOrder parses an order line in description form, e.g. "DarkRoast, Mocha, Whip".
func ParseOrder(line string) (Order, error) {
	var names []string
	for _, field := range strings.Split(line, ",") {
		if name := strings.TrimSpace(field); name != "" {
			names = append(names, name)
		}
	}
	if slicex.IsEmpty(names) {
		return Order{}, ErrEmptyOrder
	}
	return Order{Beverage: names[0], Condiments: names[1:]}, nil
}

var _ factory.Factory[beverage.Beverage, Order] = (*Menu)(nil)

// Menu creates beverages priced from one price table.
type Menu struct {
	options *options
}

// New returns a Menu. An invalid price table is reported by Create.
func New(opts ...Option) *Menu {
	return &Menu{options: newOptions(opts...)}
}

// Create builds the beverage described by order.
// It fails for every order if the menu was given an invalid price table.
func (m *Menu) Create(ctx context.Context, order Order) (beverage.Beverage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.options.err != nil {
		return nil, m.options.err
	}
	if order.Beverage == "" {
		return nil, ErrEmptyOrder
	}
	prices := beverage.Prices(m.options.Prices)
	b, ok := beverage.New(order.Beverage, prices)
	if !ok {
		return nil, fmt.Errorf("menu: %q: %w", order.Beverage, ErrUnknownBeverage)
	}
	if slicex.IsEmpty(order.Condiments) {
		return b, nil
	}
	decorators := make([]decorator.Decorator[beverage.Beverage], 0, len(order.Condiments))
	for _, name := range order.Condiments {
		d, ok := beverage.Condiment(name, prices)
		if !ok {
			return nil, fmt.Errorf("menu: %q: %w", name, ErrUnknownCondiment)
		}
		decorators = append(decorators, d)
	}
	return decorator.Wrap(b, decorators...), nil
}

// Order starts an order for the beverage called name.
func (m *Menu) Order(name string) *OrderBuilder {
	return &OrderBuilder{menu: m, order: Order{Beverage: name}}
}

// Beverages returns the names of the base beverages on offer.
func (m *Menu) Beverages() []string {
	return beverage.BeverageNames()
}

// Condiments returns the names of the condiments on offer.
func (m *Menu) Condiments() []string {
	return beverage.CondimentNames()
}

// Price returns the price of a single item on the menu.
func (m *Menu) Price(name string) (beverage.Price, bool) {
	return m.options.Prices.Lookup(name)
}

// Prices returns a copy of the price table in use.
func (m *Menu) Prices() beverage.PriceTable {
	return maps.Clone(m.options.Prices)
}
