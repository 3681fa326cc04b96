package beverage

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PriceTable maps item names to prices.
type PriceTable map[string]Price

var defaultPrices = PriceTable{
	HouseBlendName: 89,
	DarkRoastName:  99,
	DecafName:      105,
	EspressoName:   199,
	MilkName:       199,
	MochaName:      199,
	SoyName:        199,
	WhipName:       199,
}

// DefaultPrices returns a copy of the built-in price table.
func DefaultPrices() PriceTable {
	return maps.Clone(defaultPrices)
}

// LoadPriceTable decodes a JSON object of item names to dollar amounts,
// e.g. {"DarkRoast": 0.99, "Mocha": 1.99}.
func LoadPriceTable(r io.Reader) (PriceTable, error) {
	var dollars map[string]float64
	if err := jsoniter.NewDecoder(r).Decode(&dollars); err != nil {
		return nil, fmt.Errorf("beverage: decode price table: %w", err)
	}
	table := make(PriceTable, len(dollars))
	for _, name := range maps.Keys(dollars) {
		price, err := ParsePrice(dollars[name])
		if err != nil {
			return nil, fmt.Errorf("beverage: %s: %w", name, err)
		}
		table[name] = price
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate reports the first entry with an empty name or a negative price.
func (t PriceTable) Validate() error {
	for _, name := range t.Names() {
		if name == "" {
			return ErrEmptyName
		}
		if t[name] < 0 {
			return fmt.Errorf("beverage: %s: %w", name, ErrNegativePrice)
		}
	}
	return nil
}

// Lookup returns the price of name.
func (t PriceTable) Lookup(name string) (Price, bool) {
	price, ok := t[name]
	return price, ok
}

// Names returns the item names in sorted order.
func (t PriceTable) Names() []string {
	names := maps.Keys(t)
	slices.Sort(names)
	return names
}

// Merge returns a new table holding t overridden by other.
func (t PriceTable) Merge(other PriceTable) PriceTable {
	merged := maps.Clone(t)
	if merged == nil {
		merged = make(PriceTable, len(other))
	}
	maps.Copy(merged, other)
	return merged
}
