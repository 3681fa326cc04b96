// Package beverage models the StarBuzz menu with the decorator pattern.
//
// Base beverages and condiments share one capability, Beverage. A condiment
// owns the Beverage it wraps and delegates to it explicitly: its cost is its
// own price plus the wrapped cost, its description is the wrapped description
// followed by its own name.
//
//	b := NewWhip(NewMocha(NewDarkRoast()))
//	b.Description() // "DarkRoast, Mocha, Whip"
//	b.Cost()        // 4.97
package beverage

// Beverage is a priced, describable item.
type Beverage interface {
	// Description returns the full description, including every condiment.
	Description() string

	// Cost returns the full price, including every condiment.
	Cost() Price
}

// Item is a single layer of a Beverage: the base beverage or one condiment.
type Item interface {
	// Name returns the name of this layer only.
	Name() string

	// Price returns the price of this layer only.
	Price() Price
}

// Wrapper is implemented by beverages that decorate another Beverage.
type Wrapper interface {
	// Unwrap returns the wrapped Beverage.
	Unwrap() Beverage
}

const (
	HouseBlendName = "HouseBlend"
	DarkRoastName  = "DarkRoast"
	DecafName      = "Decaf"
	EspressoName   = "Espresso"
)

const (
	MilkName  = "Milk"
	MochaName = "Mocha"
	SoyName   = "Soy"
	WhipName  = "Whip"
)
