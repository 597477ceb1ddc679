package allocation

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// BackOrderStatus is the lifecycle state of a BackOrder.
//
//	Pending ──> PartiallyFulfilled ──> Fulfilled
//	   └──────────────┴──> Cancelled
type BackOrderStatus int

const (
	UnknownBackOrderStatus BackOrderStatus = iota
	Pending
	PartiallyFulfilled
	Fulfilled
	BackOrderCancelled
)

func getBackOrderStatusStrings() map[BackOrderStatus]string {
	return map[BackOrderStatus]string{
		UnknownBackOrderStatus: "unknown",
		Pending:                "pending",
		PartiallyFulfilled:     "partially_fulfilled",
		Fulfilled:              "fulfilled",
		BackOrderCancelled:     "cancelled",
	}
}

func (s BackOrderStatus) Validate() error {
	if s <= UnknownBackOrderStatus || s > BackOrderCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid backorder status", s))
	}
	return nil
}

func (s BackOrderStatus) String() string {
	if str, ok := getBackOrderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpen reports whether the backorder still waits for inventory.
func (s BackOrderStatus) IsOpen() bool {
	return s == Pending || s == PartiallyFulfilled
}

func (s BackOrderStatus) validateOpen(action string) error {
	if !s.IsOpen() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s, action),
		)
	}
	return nil
}
