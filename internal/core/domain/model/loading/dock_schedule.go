package loading

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDockScheduleIsNotConstructed is returned when using a zero-value DockSchedule.
var ErrDockScheduleIsNotConstructed = errors.New("DockSchedule must be created via NewDockSchedule constructor")

// DockSchedule reserves a time window at one loading dock for a load plan.
type DockSchedule struct {
	id          kernel.UUID
	dockID      kernel.UUID
	loadPlanID  kernel.UUID
	window      kernel.TimeWindow
	status      DockScheduleStatus
	scheduledBy string
	notes       string
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewDockSchedule creates a Scheduled reservation. Overlap with other
// schedules is checked by the caller under the dock lock.
func NewDockSchedule(
	id kernel.UUID,
	dockID kernel.UUID,
	loadPlanID kernel.UUID,
	window kernel.TimeWindow,
	scheduledBy string,
	notes string,
	createdAt time.Time,
) (*DockSchedule, error) {
	var windowErr error
	if window.IsZero() {
		windowErr = errs.NewValueIsRequiredError("window")
	}
	var actorErr error
	if strings.TrimSpace(scheduledBy) == "" {
		actorErr = errs.NewValueIsRequiredError("scheduledBy")
	}

	if err := errors.Join(
		id.Validate(),
		wrapRequired("dockId", dockID),
		wrapRequired("loadPlanId", loadPlanID),
		windowErr,
		actorErr,
	); err != nil {
		return nil, err
	}

	return &DockSchedule{
		id:          id,
		dockID:      dockID,
		loadPlanID:  loadPlanID,
		window:      window,
		status:      Scheduled,
		scheduledBy: scheduledBy,
		notes:       notes,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreDockSchedule rebuilds a DockSchedule from persistence.
func RestoreDockSchedule(
	id kernel.UUID,
	dockID kernel.UUID,
	loadPlanID kernel.UUID,
	window kernel.TimeWindow,
	status DockScheduleStatus,
	scheduledBy string,
	notes string,
	createdAt time.Time,
) (*DockSchedule, error) {
	d, err := NewDockSchedule(id, dockID, loadPlanID, window, scheduledBy, notes, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status
	return d, nil
}

func wrapRequired(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func (d *DockSchedule) Validate() error {
	if d == nil {
		return ErrDockScheduleIsNotConstructed
	}
	return d.guard.Validate(ErrDockScheduleIsNotConstructed)
}

func (d *DockSchedule) ID() kernel.UUID { return d.id }
func (d *DockSchedule) DockID() kernel.UUID { return d.dockID }
func (d *DockSchedule) LoadPlanID() kernel.UUID { return d.loadPlanID }
func (d *DockSchedule) Window() kernel.TimeWindow { return d.window }
func (d *DockSchedule) Status() DockScheduleStatus { return d.status }
func (d *DockSchedule) ScheduledBy() string { return d.scheduledBy }
func (d *DockSchedule) Notes() string { return d.notes }
func (d *DockSchedule) CreatedAt() time.Time { return d.createdAt }

// ConflictsWith reports whether both schedules hold overlapping windows at the
// same dock.
func (d *DockSchedule) ConflictsWith(other *DockSchedule) bool {
	return d.dockID == other.dockID &&
		d.id != other.id &&
		d.status.OccupiesDock() &&
		other.status.OccupiesDock() &&
		d.window.Overlaps(other.window)
}

// ChangeStatus applies a status transition.
func (d *DockSchedule) ChangeStatus(target DockScheduleStatus) error {
	next, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	d.status = next
	return nil
}
