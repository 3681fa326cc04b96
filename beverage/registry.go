package beverage

import (
	"github.com/go-leo/starbuzz/decorator"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var beverages = map[string]func(opts ...Option) Beverage{
	HouseBlendName: func(opts ...Option) Beverage { return NewHouseBlend(opts...) },
	DarkRoastName:  func(opts ...Option) Beverage { return NewDarkRoast(opts...) },
	DecafName:      func(opts ...Option) Beverage { return NewDecaf(opts...) },
	EspressoName:   func(opts ...Option) Beverage { return NewEspresso(opts...) },
}

var condiments = map[string]func(opts ...Option) decorator.Decorator[Beverage]{
	MilkName:  WithMilk,
	MochaName: WithMocha,
	SoyName:   WithSoy,
	WhipName:  WithWhip,
}

// New returns the base beverage called name.
func New(name string, opts ...Option) (Beverage, bool) {
	newFunc, ok := beverages[name]
	if !ok {
		return nil, false
	}
	return newFunc(opts...), true
}

// Condiment returns a Decorator for the condiment called name.
func Condiment(name string, opts ...Option) (decorator.Decorator[Beverage], bool) {
	withFunc, ok := condiments[name]
	if !ok {
		return nil, false
	}
	return withFunc(opts...), true
}

// BeverageNames returns the names of the base beverages in sorted order.
func BeverageNames() []string {
	names := maps.Keys(beverages)
	slices.Sort(names)
	return names
}

// CondimentNames returns the names of the condiments in sorted order.
func CondimentNames() []string {
	names := maps.Keys(condiments)
	slices.Sort(names)
	return names
}
