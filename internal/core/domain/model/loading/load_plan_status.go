package loading

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// LoadPlanStatus is the lifecycle state of a LoadPlan. Transitions only move
// one step forward:
//
//	Planned ──> Loading ──> Loaded ──> Dispatched ──> Delivered
type LoadPlanStatus int

const (
	UnknownLoadPlanStatus LoadPlanStatus = iota
	Planned
	Loading
	Loaded
	Dispatched
	Delivered
)

func getLoadPlanStatusStrings() map[LoadPlanStatus]string {
	return map[LoadPlanStatus]string{
		UnknownLoadPlanStatus: "unknown",
		Planned:               "planned",
		Loading:               "loading",
		Loaded:                "loaded",
		Dispatched:            "dispatched",
		Delivered:             "delivered",
	}
}

// ParseLoadPlanStatus converts a status name into a LoadPlanStatus.
func ParseLoadPlanStatus(s string) (LoadPlanStatus, error) {
	for st, name := range getLoadPlanStatusStrings() {
		if st != UnknownLoadPlanStatus && strings.EqualFold(name, s) {
			return st, nil
		}
	}
	return UnknownLoadPlanStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid load plan status", s))
}

func (s LoadPlanStatus) Validate() error {
	if s <= UnknownLoadPlanStatus || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid load plan status", s))
	}
	return nil
}

func (s LoadPlanStatus) String() string {
	if str, ok := getLoadPlanStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpen reports whether shipments may still be assigned.
func (s LoadPlanStatus) IsOpen() bool {
	return s == Planned || s == Loading
}

// TransitionTo returns target if it is the direct successor of s.
func (s LoadPlanStatus) TransitionTo(target LoadPlanStatus) (LoadPlanStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s == UnknownLoadPlanStatus || s >= Delivered || target != s+1 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to move to %s", s, target),
		)
	}
	return target, nil
}
