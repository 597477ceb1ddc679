package packing

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CartonType is catalog reference data: the inner geometry and weight limit
// of a box. It has no lifecycle beyond its active flag.
type CartonType struct {
	id         kernel.UUID
	code       string
	dimensions kernel.Dimensions
	maxWeight  kernel.Weight
	active     bool
}

// NewCartonType validates a catalog entry.
func NewCartonType(id kernel.UUID, code string, dimensions kernel.Dimensions, maxWeight kernel.Weight, active bool) (CartonType, error) {
	code = strings.TrimSpace(code)

	var codeErr error
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("code")
	}
	var weightErr error
	if !maxWeight.IsPositive() {
		weightErr = errs.NewValueIsRequiredError("maxWeight")
	}

	if err := errors.Join(id.Validate(), codeErr, dimensions.Validate(), weightErr); err != nil {
		return CartonType{}, err
	}

	return CartonType{id: id, code: code, dimensions: dimensions, maxWeight: maxWeight, active: active}, nil
}

func (c CartonType) ID() kernel.UUID { return c.id }
func (c CartonType) Code() string { return c.code }
func (c CartonType) Dimensions() kernel.Dimensions { return c.dimensions }
func (c CartonType) MaxWeight() kernel.Weight { return c.maxWeight }
func (c CartonType) IsActive() bool { return c.active }

// Volume returns the inner volume.
func (c CartonType) Volume() decimal.Decimal {
	return c.dimensions.Volume()
}

// CanFitDimensions tries all six orientations of d against the inner box.
func (c CartonType) CanFitDimensions(d kernel.Dimensions) bool {
	return d.FitsWithin(c.dimensions)
}

// CanHoldWeight reports whether w is within the weight limit.
func (c CartonType) CanHoldWeight(w kernel.Weight) bool {
	return !w.GreaterThan(c.maxWeight)
}
