package loading

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when a shipment does not fit the remaining
	// weight or volume of a plan, or a dock window is already taken.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrPlanNotOpen is returned when assigning to a plan that left loading.
	ErrPlanNotOpen = errors.New("load plan is not open")
	// ErrAlreadyAssigned is returned when the shipment is already on the plan.
	ErrAlreadyAssigned = errors.New("shipment already assigned")
	// ErrShipmentNotAssigned is returned when removing a shipment that is not on the plan.
	ErrShipmentNotAssigned = errors.New("shipment not assigned")
)

// RejectionReason explains why a shipment was not accepted by a plan.
type RejectionReason string

const (
	WeightCapacityExceeded RejectionReason = "weight_capacity_exceeded"
	VolumeCapacityExceeded RejectionReason = "volume_capacity_exceeded"
	PlanNotOpen            RejectionReason = "plan_not_open"
	AlreadyAssigned        RejectionReason = "already_assigned"
)

// RejectionError carries the reason of a refused assignment and unwraps to the
// matching sentinel.
type RejectionError struct {
	Reason RejectionReason
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("shipment rejected: %s", e.Reason)
}

func (e *RejectionError) Unwrap() error {
	switch e.Reason {
	case WeightCapacityExceeded, VolumeCapacityExceeded:
		return ErrCapacityExceeded
	case PlanNotOpen:
		return ErrPlanNotOpen
	default:
		return ErrAlreadyAssigned
	}
}
