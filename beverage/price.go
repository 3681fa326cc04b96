package beverage

import (
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
)

// Price is an amount of money in cents.
type Price int64

// PriceOf converts dollars to a Price, rounding to the nearest cent.
// dollars must be in range, use ParsePrice for untrusted input.
func PriceOf(dollars float64) Price {
	return Price(math.Round(dollars * 100))
}

// ParsePrice is like PriceOf but rejects NaN and amounts that overflow a Price.
func ParsePrice(dollars float64) (Price, error) {
	cents := math.Round(dollars * 100)
	if math.IsNaN(cents) || cents >= math.MaxInt64 || cents < math.MinInt64 {
		return 0, ErrPriceOutOfRange
	}
	return Price(cents), nil
}

// Float64 returns the price in dollars.
func (p Price) Float64() float64 {
	return float64(p) / 100
}

func (p Price) String() string {
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}

// MarshalJSON encodes the price as a number of dollars.
func (p Price) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(p.Float64())
}

// UnmarshalJSON decodes a number of dollars.
func (p *Price) UnmarshalJSON(data []byte) error {
	var dollars float64
	if err := jsoniter.Unmarshal(data, &dollars); err != nil {
		return err
	}
	price, err := ParsePrice(dollars)
	if err != nil {
		return err
	}
	*p = price
	return nil
}
