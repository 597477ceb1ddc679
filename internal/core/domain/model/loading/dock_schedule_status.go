package loading

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// DockScheduleStatus is the lifecycle state of a DockSchedule.
//
//	Scheduled ──> Confirmed ──> InProgress ──> Completed
//	    └────────────┴─────────────┴──> Cancelled | NoShow
type DockScheduleStatus int

const (
	UnknownDockScheduleStatus DockScheduleStatus = iota
	Scheduled
	Confirmed
	InProgress
	Completed
	DockCancelled
	NoShow
)

func getDockScheduleStatusStrings() map[DockScheduleStatus]string {
	return map[DockScheduleStatus]string{
		UnknownDockScheduleStatus: "unknown",
		Scheduled:                 "scheduled",
		Confirmed:                 "confirmed",
		InProgress:                "in_progress",
		Completed:                 "completed",
		DockCancelled:             "cancelled",
		NoShow:                    "no_show",
	}
}

// ParseDockScheduleStatus converts a status name into a DockScheduleStatus.
func ParseDockScheduleStatus(s string) (DockScheduleStatus, error) {
	for st, name := range getDockScheduleStatusStrings() {
		if st != UnknownDockScheduleStatus && strings.EqualFold(name, s) {
			return st, nil
		}
	}
	return UnknownDockScheduleStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid dock schedule status", s))
}

func (s DockScheduleStatus) Validate() error {
	if s <= UnknownDockScheduleStatus || s > NoShow {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid dock schedule status", s))
	}
	return nil
}

func (s DockScheduleStatus) String() string {
	if str, ok := getDockScheduleStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s DockScheduleStatus) IsTerminal() bool {
	return s == Completed || s == DockCancelled || s == NoShow
}

// OccupiesDock reports whether the schedule still holds its window.
func (s DockScheduleStatus) OccupiesDock() bool {
	return s != DockCancelled && s != NoShow
}

// TransitionTo validates a move to target. The main line moves one step at a
// time; Cancelled and NoShow are reachable from every non-terminal state.
func (s DockScheduleStatus) TransitionTo(target DockScheduleStatus) (DockScheduleStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	allowed := false
	if !s.IsTerminal() && s != UnknownDockScheduleStatus {
		switch target {
		case DockCancelled, NoShow:
			allowed = true
		case Confirmed, InProgress, Completed:
			allowed = target == s+1
		}
	}

	if !allowed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to move to %s", s, target),
		)
	}
	return target, nil
}
