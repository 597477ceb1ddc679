package picking

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ListStatus is the lifecycle state of a PickList.
//
//	Pending ──> InProgress ──> Completed
//	   └────────────┴──> Cancelled
type ListStatus int

const (
	UnknownListStatus ListStatus = iota
	ListPending
	ListInProgress
	ListCompleted
	ListCancelled
)

func getListStatusStrings() map[ListStatus]string {
	return map[ListStatus]string{
		UnknownListStatus: "unknown",
		ListPending:       "pending",
		ListInProgress:    "in_progress",
		ListCompleted:     "completed",
		ListCancelled:     "cancelled",
	}
}

func (s ListStatus) Validate() error {
	if s <= UnknownListStatus || s > ListCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid pick list status", s))
	}
	return nil
}

func (s ListStatus) String() string {
	if str, ok := getListStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether picks may still be recorded.
func (s ListStatus) IsActive() bool {
	return s == ListPending || s == ListInProgress
}

func (s ListStatus) validateActive(action string) error {
	if !s.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s, action),
		)
	}
	return nil
}
