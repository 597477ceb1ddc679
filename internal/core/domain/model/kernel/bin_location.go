package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrBinLocationIsNotConstructed is returned when validating a zero-value BinLocation.
var ErrBinLocationIsNotConstructed = errs.NewValueIsRequiredError("bin location must be created via NewBinLocation")

// BinLocation addresses a storage slot in a warehouse. Pick paths walk aisles
// in ascending order and positions within an aisle in ascending order.
type BinLocation struct {
	zone     string
	aisle    int
	position int
}

// NewBinLocation validates the address. Zone may be empty for single-zone
// warehouses; aisle and position must be positive.
func NewBinLocation(zone string, aisle, position int) (BinLocation, error) {
	if err := errors.Join(
		validateBinIndex("aisle", aisle),
		validateBinIndex("position", position),
	); err != nil {
		return BinLocation{}, err
	}

	return BinLocation{zone: strings.TrimSpace(zone), aisle: aisle, position: position}, nil
}

// MustBinLocation panics when NewBinLocation fails.
func MustBinLocation(zone string, aisle, position int) BinLocation {
	l, err := NewBinLocation(zone, aisle, position)
	if err != nil {
		panic(err)
	}
	return l
}

func validateBinIndex(name string, v int) error {
	if v < 1 {
		return errs.NewValueIsOutOfRangeError(name, v, 1, "unbounded")
	}
	return nil
}

func (l BinLocation) Zone() string { return l.zone }
func (l BinLocation) Aisle() int { return l.aisle }
func (l BinLocation) Position() int { return l.position }

// Compare orders locations by aisle, then position. Zones are not part of the
// walk order.
func (l BinLocation) Compare(other BinLocation) int {
	if l.aisle != other.aisle {
		if l.aisle < other.aisle {
			return -1
		}
		return 1
	}
	switch {
	case l.position < other.position:
		return -1
	case l.position > other.position:
		return 1
	default:
		return 0
	}
}

func (l BinLocation) IsEqual(other BinLocation) bool {
	return l == other
}

func (l BinLocation) Validate() error {
	if l.aisle == 0 || l.position == 0 {
		return ErrBinLocationIsNotConstructed
	}
	return nil
}

// String renders the address as "zone-aisle-position", or "aisle-position"
// without a zone.
func (l BinLocation) String() string {
	if l.zone == "" {
		return fmt.Sprintf("%02d-%03d", l.aisle, l.position)
	}
	return fmt.Sprintf("%s-%02d-%03d", l.zone, l.aisle, l.position)
}
