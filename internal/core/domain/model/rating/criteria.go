package rating

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Strategy chooses between quotes that pass the filters.
type Strategy int

const (
	UnknownStrategy Strategy = iota
	// Cheapest picks the lowest cost; ties go to fewer transit days, then name.
	Cheapest
	// Fastest picks the fewest transit days; ties go to the lower cost, then name.
	Fastest
)

// ParseStrategy converts "cheapest" or "fastest" into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cheapest", "":
		return Cheapest, nil
	case "fastest":
		return Fastest, nil
	default:
		return UnknownStrategy, errs.NewValueIsInvalidErrorWithCause("strategy is invalid", fmt.Errorf("%q is not a valid strategy", s))
	}
}

func (s Strategy) String() string {
	switch s {
	case Cheapest:
		return "cheapest"
	case Fastest:
		return "fastest"
	default:
		return "unknown"
	}
}

// Criteria are the caller-supplied selection rules. MaxCost doubles as the
// cost ceiling of the Fastest strategy.
type Criteria struct {
	Strategy       Strategy
	MaxTransitDays *int
	MaxCost        *kernel.Money
}

func (c Criteria) Validate() error {
	if c.Strategy != Cheapest && c.Strategy != Fastest {
		return errs.NewValueIsInvalidErrorWithCause("strategy is invalid", fmt.Errorf("%d is not a valid strategy", c.Strategy))
	}
	if c.MaxTransitDays != nil && *c.MaxTransitDays < 0 {
		return errs.NewValueIsOutOfRangeError("maxTransitDays", *c.MaxTransitDays, 0, "unbounded")
	}
	return nil
}

// Admits reports whether q passes the filters.
func (c Criteria) Admits(q Quote) bool {
	if c.MaxTransitDays != nil && q.TransitDays > *c.MaxTransitDays {
		return false
	}
	if c.MaxCost != nil && q.Cost.GreaterThan(*c.MaxCost) {
		return false
	}
	return true
}

// ShipmentSpec describes what is being quoted.
type ShipmentSpec struct {
	Weight      kernel.Weight
	Volume      kernel.Volume
	Origin      string
	Destination string
}

func (s ShipmentSpec) Validate() error {
	switch {
	case !s.Weight.IsPositive():
		return errs.NewValueIsRequiredError("weight")
	case strings.TrimSpace(s.Origin) == "":
		return errs.NewValueIsRequiredError("origin")
	case strings.TrimSpace(s.Destination) == "":
		return errs.NewValueIsRequiredError("destination")
	}
	return nil
}
