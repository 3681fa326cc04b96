package menu

import (
	"context"

	"github.com/go-leo/starbuzz/beverage"
	"github.com/go-leo/starbuzz/builder"
)

var _ builder.Builder[beverage.Beverage] = (*OrderBuilder)(nil)

// OrderBuilder collects condiments for one order.
type OrderBuilder struct {
	menu  *Menu
	order Order
}

// With adds condiments, each one wrapping everything added before it.
func (b *OrderBuilder) With(condiments ...string) *OrderBuilder {
	b.order.Condiments = append(b.order.Condiments, condiments...)
	return b
}

// Order returns a copy of the order collected so far.
func (b *OrderBuilder) Order() Order {
	order := b.order
	order.Condiments = append([]string(nil), b.order.Condiments...)
	return order
}

func (b *OrderBuilder) Build(ctx context.Context) (beverage.Beverage, error) {
	return b.menu.Create(ctx, b.order)
}
