package allocation

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of an Allocation.
//
//	Allocated ──> PartiallyPicked ──> Picked
//	    │               │
//	    ├──> Expired    └──> Cancelled
//	    └──> Cancelled
type Status int

const (
	UnknownStatus Status = iota
	Allocated
	PartiallyPicked
	Picked
	Expired
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:   "unknown",
		Allocated:       "allocated",
		PartiallyPicked: "partially_picked",
		Picked:          "picked",
		Expired:         "expired",
		Cancelled:       "cancelled",
	}
}

func (s Status) Validate() error {
	if s <= UnknownStatus || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsLive reports whether the hold still reserves inventory that has not been picked.
func (s Status) IsLive() bool {
	return s == Allocated || s == PartiallyPicked
}

// ValidateMutation maps terminal states onto the domain errors returned to
// callers that try to pick from or renew the allocation.
func (s Status) ValidateMutation() error {
	switch s {
	case Allocated, PartiallyPicked:
		return nil
	case Expired:
		return ErrAllocationExpired
	case Picked, Cancelled:
		return ErrAllocationNotAvailable
	default:
		return s.Validate()
	}
}

// Expire transitions Allocated to Expired. Any other state is rejected.
func (s Status) Expire() (Status, error) {
	if s != Allocated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s),
		)
	}
	return Expired, nil
}

// Cancel transitions a live allocation to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateMutation(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}
