package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CartonSelector picks a box from the carton catalog.
type CartonSelector struct{}

func NewCartonSelector() CartonSelector {
	return CartonSelector{}
}

// Select returns the active carton type with the smallest inner volume that
// fits every item in some orientation, whose volume is at least the combined
// item volume and whose weight limit holds totalWeight. Ties keep catalog
// order. packing.ErrNoCartonFits is returned when nothing qualifies.
func (s CartonSelector) Select(items []kernel.Dimensions, totalWeight kernel.Weight, catalog []packing.CartonType) (packing.CartonType, error) {
	if len(items) == 0 {
		return packing.CartonType{}, errs.NewValueIsRequiredError("items")
	}

	itemVolume := decimal.Zero
	for _, d := range items {
		if err := d.Validate(); err != nil {
			return packing.CartonType{}, err
		}
		itemVolume = itemVolume.Add(d.Volume())
	}

	var (
		best  packing.CartonType
		found bool
	)
	for _, candidate := range catalog {
		if !s.holds(candidate, items, itemVolume, totalWeight) {
			continue
		}
		if !found || candidate.Volume().LessThan(best.Volume()) {
			best = candidate
			found = true
		}
	}

	if !found {
		return packing.CartonType{}, packing.ErrNoCartonFits
	}
	return best, nil
}

func (s CartonSelector) holds(c packing.CartonType, items []kernel.Dimensions, itemVolume decimal.Decimal, weight kernel.Weight) bool {
	if !c.IsActive() || !c.CanHoldWeight(weight) || c.Volume().LessThan(itemVolume) {
		return false
	}
	for _, d := range items {
		if !c.CanFitDimensions(d) {
			return false
		}
	}
	return true
}
