package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrScheduleDockCommandIsNotConstructed = errors.New(
	"ScheduleDockCommand must be created via NewScheduleDockCommand constructor",
)

// ScheduleDockCommand reserves a dock for loading a plan during a window.
type ScheduleDockCommand struct { //nolint:recvcheck //using for validation
	dockID      kernel.UUID
	loadPlanID  kernel.UUID
	window      kernel.TimeWindow
	scheduledBy string
	notes       string

	guard guard.ConstructorGuard
}

func NewScheduleDockCommand(
	dockID kernel.UUID,
	loadPlanID kernel.UUID,
	window kernel.TimeWindow,
	scheduledBy string,
	notes string,
) (ScheduleDockCommand, error) {
	var windowErr error
	if window.IsZero() {
		windowErr = errs.NewValueIsRequiredError("window")
	}
	scheduledBy, actorErr := requireText("scheduledBy", scheduledBy)

	if err := errors.Join(requireID("dockId", dockID), requireID("loadPlanId", loadPlanID), windowErr, actorErr); err != nil {
		return ScheduleDockCommand{}, err
	}

	return ScheduleDockCommand{
		dockID:      dockID,
		loadPlanID:  loadPlanID,
		window:      window,
		scheduledBy: scheduledBy,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ScheduleDockCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDockCommandIsNotConstructed)
}

func (c ScheduleDockCommand) DockID() kernel.UUID { return c.dockID }
func (c ScheduleDockCommand) LoadPlanID() kernel.UUID { return c.loadPlanID }
func (c ScheduleDockCommand) Window() kernel.TimeWindow { return c.window }
func (c ScheduleDockCommand) ScheduledBy() string { return c.scheduledBy }
func (c ScheduleDockCommand) Notes() string { return c.notes }
