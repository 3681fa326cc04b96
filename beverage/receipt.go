package beverage

import jsoniter "github.com/json-iterator/go"

// Layers returns the layers of b from the base beverage outwards.
func Layers(b Beverage) []Item {
	var items []Item
	for b != nil {
		items = append(items, asItem(b))
		w, ok := b.(Wrapper)
		if !ok {
			break
		}
		b = w.Unwrap()
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// foreign adapts a Beverage that does not describe its own layer.
type foreign struct{ Beverage }

func (f foreign) Name() string { return f.Description() }

func (f foreign) Price() Price { return f.Cost() }

func asItem(b Beverage) Item {
	if item, ok := b.(Item); ok {
		return item
	}
	return foreign{Beverage: b}
}

// Line is one layer of a Receipt.
type Line struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Receipt itemizes a Beverage one line per layer.
type Receipt struct {
	Description string `json:"description"`
	Lines       []Line `json:"lines"`
	Total       Price  `json:"total"`
}

// NewReceipt itemizes b, base beverage first.
func NewReceipt(b Beverage) Receipt {
	layers := Layers(b)
	lines := make([]Line, 0, len(layers))
	for _, item := range layers {
		lines = append(lines, Line{Name: item.Name(), Price: item.Price()})
	}
	return Receipt{Description: b.Description(), Lines: lines, Total: b.Cost()}
}

// JSON encodes the receipt.
func (r Receipt) JSON() ([]byte, error) {
	return jsoniter.Marshal(r)
}
