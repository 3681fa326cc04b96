package beverage

import (
	"testing"

	"github.com/go-leo/gox/errorx"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
)

type ginger struct{}

func (ginger) Description() string { return "Ginger" }

func (ginger) Cost() Price { return 30 }

func TestLayers(t *testing.T) {
	layers := Layers(NewWhip(NewMocha(NewDarkRoast())))
	assert.Len(t, layers, 3)
	names := make([]string, 0, len(layers))
	for _, item := range layers {
		names = append(names, item.Name())
	}
	assert.Equal(t, []string{DarkRoastName, MochaName, WhipName}, names)
	assert.Equal(t, Price(99), layers[0].Price())

	assert.Nil(t, Layers(nil))

	layers = Layers(NewSoy(ginger{}))
	assert.Equal(t, "Ginger", layers[0].Name())
	assert.Equal(t, Price(30), layers[0].Price())
}

func TestReceipt(t *testing.T) {
	receipt := NewReceipt(NewWhip(NewMocha(NewDarkRoast())))
	assert.Equal(t, Price(497), receipt.Total)
	assert.Equal(t, "DarkRoast, Mocha, Whip", receipt.Description)

	ja := jsonassert.New(t)
	ja.Assertf(string(errorx.Ignore(receipt.JSON())), `{
		"description": "DarkRoast, Mocha, Whip",
		"lines": [
			{"name": "DarkRoast", "price": 0.99},
			{"name": "Mocha", "price": 1.99},
			{"name": "Whip", "price": 1.99}
		],
		"total": 4.97
	}`)
}
