package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const dimensionPlaces = 2

// ErrDimensionsAreNotConstructed is returned when validating zero-value Dimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")

// Dimensions is the length × width × height of a box or item, each axis
// strictly positive and rounded to two decimal places.
type Dimensions struct {
	length decimal.Decimal
	width  decimal.Decimal
	height decimal.Decimal
}

// NewDimensions validates every axis and rounds it to two decimal places.
func NewDimensions(length, width, height decimal.Decimal) (Dimensions, error) {
	if err := errors.Join(
		validateAxis("length", length),
		validateAxis("width", width),
		validateAxis("height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		length: length.Round(dimensionPlaces),
		width:  width.Round(dimensionPlaces),
		height: height.Round(dimensionPlaces),
	}, nil
}

// MustDimensions builds Dimensions from integer axes and panics on invalid input.
func MustDimensions(length, width, height int64) Dimensions {
	d, err := NewDimensions(decimal.NewFromInt(length), decimal.NewFromInt(width), decimal.NewFromInt(height))
	if err != nil {
		panic(err)
	}
	return d
}

func validateAxis(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" is invalid",
			fmt.Errorf("%s is not greater than 0", v.String()),
		)
	}
	return nil
}

func (d Dimensions) Length() decimal.Decimal { return d.length }
func (d Dimensions) Width() decimal.Decimal { return d.width }
func (d Dimensions) Height() decimal.Decimal { return d.height }

// Volume returns length × width × height.
func (d Dimensions) Volume() decimal.Decimal {
	return d.length.Mul(d.width).Mul(d.height)
}

// Axes returns the three axes in declared order.
func (d Dimensions) Axes() [3]decimal.Decimal {
	return [3]decimal.Decimal{d.length, d.width, d.height}
}

// FitsWithin reports whether d fits inside outer under any of the six axis
// orientations.
func (d Dimensions) FitsWithin(outer Dimensions) bool {
	a := d.Axes()
	o := outer.Axes()
	for _, p := range axisPermutations {
		if a[p[0]].LessThanOrEqual(o[0]) &&
			a[p[1]].LessThanOrEqual(o[1]) &&
			a[p[2]].LessThanOrEqual(o[2]) {
			return true
		}
	}
	return false
}

var axisPermutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

func (d Dimensions) IsZero() bool {
	return d.length.IsZero() && d.width.IsZero() && d.height.IsZero()
}

// Validate returns ErrDimensionsAreNotConstructed for zero-value Dimensions.
func (d Dimensions) Validate() error {
	if d.IsZero() {
		return ErrDimensionsAreNotConstructed
	}
	return nil
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%sx%sx%s",
		d.length.StringFixed(dimensionPlaces),
		d.width.StringFixed(dimensionPlaces),
		d.height.StringFixed(dimensionPlaces))
}
