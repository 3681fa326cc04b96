package beverage

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, Price(497), PriceOf(4.97))
	assert.Equal(t, Price(100), PriceOf(0.999))
	assert.Equal(t, "4.97", Price(497).String())
	assert.Equal(t, "0.05", Price(5).String())
	assert.Equal(t, "-1.20", Price(-120).String())
	assert.Equal(t, 4.97, (Price(99) + Price(199) + Price(199)).Float64())
}

func TestPriceJSON(t *testing.T) {
	assert.Equal(t, "1.99", string(errorx.Ignore(jsoniter.Marshal(Price(199)))))

	var p Price
	assert.NoError(t, jsoniter.Unmarshal([]byte("0.89"), &p))
	assert.Equal(t, Price(89), p)
	assert.Error(t, jsoniter.Unmarshal([]byte(`"cheap"`), &p))
	assert.Error(t, jsoniter.Unmarshal([]byte("1e300"), &p))
	assert.Equal(t, Price(89), p)
}

func TestParsePrice(t *testing.T) {
	price, err := ParsePrice(4.97)
	assert.NoError(t, err)
	assert.Equal(t, Price(497), price)

	for _, dollars := range []float64{1e300, -1e300, math.NaN(), math.Inf(1), 1e17} {
		_, err = ParsePrice(dollars)
		assert.ErrorIs(t, err, ErrPriceOutOfRange, dollars)
	}
}

func TestDefaultPrices(t *testing.T) {
	table := DefaultPrices()
	assert.Equal(t, Price(99), table[DarkRoastName])
	assert.Len(t, table, 8)

	table[DarkRoastName] = 1
	assert.Equal(t, Price(99), DefaultPrices()[DarkRoastName])
	assert.Equal(t, Price(99), NewDarkRoast().Cost())
}

func TestLoadPriceTable(t *testing.T) {
	table, err := LoadPriceTable(strings.NewReader(`{"DarkRoast": 1.25, "Whip": 0.5}`))
	assert.NoError(t, err)
	assert.Equal(t, PriceTable{DarkRoastName: 125, WhipName: 50}, table)
	assert.Equal(t, []string{DarkRoastName, WhipName}, table.Names())

	_, err = LoadPriceTable(strings.NewReader(`{"Mocha": -1.99}`))
	assert.True(t, errors.Is(err, ErrNegativePrice))

	_, err = LoadPriceTable(strings.NewReader(`{"": 1}`))
	assert.True(t, errors.Is(err, ErrEmptyName))

	_, err = LoadPriceTable(strings.NewReader(`{"Whip": 1e300}`))
	assert.ErrorIs(t, err, ErrPriceOutOfRange)
	assert.False(t, errors.Is(err, ErrNegativePrice))

	_, err = LoadPriceTable(strings.NewReader(`[1, 2]`))
	assert.Error(t, err)
}

func TestPriceTable(t *testing.T) {
	table := PriceTable{MochaName: 25}

	price, ok := table.Lookup(MochaName)
	assert.True(t, ok)
	assert.Equal(t, Price(25), price)

	_, ok = table.Lookup(SoyName)
	assert.False(t, ok)

	merged := DefaultPrices().Merge(table)
	assert.Equal(t, Price(25), merged[MochaName])
	assert.Equal(t, Price(199), merged[SoyName])
	assert.Equal(t, Price(199), defaultPrices[MochaName])

	assert.Equal(t, table, PriceTable(nil).Merge(table))
}
