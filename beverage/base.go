package beverage

// base is a beverage with a fixed price that wraps nothing.
type base struct {
	name  string
	price Price
}

// newBase panics if the configured price of name is negative.
func newBase(name string, opts []Option) base {
	price := newOptions(opts...).price(name)
	if price < 0 {
		panic(ErrNegativePrice)
	}
	return base{name: name, price: price}
}

func (b base) Name() string { return b.name }

func (b base) Price() Price { return b.price }

func (b base) Description() string { return b.name }

func (b base) Cost() Price { return b.price }

var (
	_ Beverage = HouseBlend{}
	_ Beverage = DarkRoast{}
	_ Beverage = Decaf{}
	_ Beverage = Espresso{}
)

// HouseBlend is the house blend base beverage.
type HouseBlend struct{ base }

// NewHouseBlend returns a HouseBlend priced from the configured table.
func NewHouseBlend(opts ...Option) HouseBlend {
	return HouseBlend{base: newBase(HouseBlendName, opts)}
}

// DarkRoast is the dark roast base beverage.
type DarkRoast struct{ base }

// NewDarkRoast returns a DarkRoast priced from the configured table.
func NewDarkRoast(opts ...Option) DarkRoast {
	return DarkRoast{base: newBase(DarkRoastName, opts)}
}

// Decaf is the decaf base beverage.
type Decaf struct{ base }

// NewDecaf returns a Decaf priced from the configured table.
func NewDecaf(opts ...Option) Decaf {
	return Decaf{base: newBase(DecafName, opts)}
}

// Espresso is the espresso base beverage.
type Espresso struct{ base }

// NewEspresso returns a Espresso priced from the configured table.
func NewEspresso(opts ...Option) Espresso {
	return Espresso{base: newBase(EspressoName, opts)}
}
