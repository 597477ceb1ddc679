package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	quantityPlaces   = 3
	moneyPlaces      = 2
	percentagePlaces = 2
)

var hundred = decimal.NewFromInt(100)

// Quantity is a non-negative amount with three decimal places. It is used for
// allocated, picked and backordered counts.
type Quantity struct {
	value decimal.Decimal
}

// Weight and Volume share the Quantity representation (kg and m³ respectively).
type (
	Weight = Quantity
	Volume = Quantity
)

// NewQuantity rounds value to three decimal places and rejects negatives.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%s is negative", value.String()),
		)
	}
	return Quantity{value: value.Round(quantityPlaces)}, nil
}

// MustQuantity parses s and panics on malformed or negative input.
// Intended for constants and tests.
func MustQuantity(s string) Quantity {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	q, err := NewQuantity(d)
	if err != nil {
		panic(err)
	}
	return q
}

// ZeroQuantity returns a quantity of 0.
func ZeroQuantity() Quantity {
	return Quantity{value: decimal.Zero}
}

func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

func (q Quantity) String() string {
	return q.value.StringFixed(quantityPlaces)
}

func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

func (q Quantity) Cmp(other Quantity) int {
	return q.value.Cmp(other.value)
}

func (q Quantity) Equal(other Quantity) bool {
	return q.value.Equal(other.value)
}

func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

func (q Quantity) GreaterThan(other Quantity) bool {
	return q.value.GreaterThan(other.value)
}

// Add returns q + other.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value)}
}

// Sub returns q - other, saturating at zero.
func (q Quantity) Sub(other Quantity) Quantity {
	d := q.value.Sub(other.value)
	if d.IsNegative() {
		return ZeroQuantity()
	}
	return Quantity{value: d}
}

// MinQuantity returns the smaller of a and b.
func MinQuantity(a, b Quantity) Quantity {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Money is a non-negative monetary amount with two decimal places.
type Money struct {
	value decimal.Decimal
}

// NewMoney rounds value to two decimal places and rejects negatives.
func NewMoney(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%s is negative", value.String()),
		)
	}
	return Money{value: value.Round(moneyPlaces)}, nil
}

// MustMoney parses s and panics on malformed or negative input.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	m, err := NewMoney(d)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) String() string {
	return m.value.StringFixed(moneyPlaces)
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

func (m Money) GreaterThan(other Money) bool {
	return m.value.GreaterThan(other.value)
}

// Percent returns part/whole × 100 rounded to two decimal places, or 0 when
// whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(percentagePlaces)
}
