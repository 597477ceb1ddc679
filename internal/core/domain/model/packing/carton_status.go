package packing

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// CartonStatus is the lifecycle state of a PackedCarton.
//
//	Packed ──> Verified ──> Shipped
//	   │          │
//	   └──────────┴──> Damaged
type CartonStatus int

const (
	UnknownCartonStatus CartonStatus = iota
	Packed
	Verified
	Shipped
	Damaged
)

func getCartonStatusStrings() map[CartonStatus]string {
	return map[CartonStatus]string{
		UnknownCartonStatus: "unknown",
		Packed:              "packed",
		Verified:            "verified",
		Shipped:             "shipped",
		Damaged:             "damaged",
	}
}

func (s CartonStatus) Validate() error {
	if s <= UnknownCartonStatus || s > Damaged {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid carton status", s))
	}
	return nil
}

func (s CartonStatus) String() string {
	if str, ok := getCartonStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOnFloor reports whether the carton is still in the packing area.
func (s CartonStatus) IsOnFloor() bool {
	return s == Packed || s == Verified
}

func (s CartonStatus) validateOnFloor(action string) error {
	if !s.IsOnFloor() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s, action),
		)
	}
	return nil
}
