package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeDockScheduleStatusCommandIsNotConstructed = errors.New(
	"ChangeDockScheduleStatusCommand must be created via NewChangeDockScheduleStatusCommand constructor",
)

type ChangeDockScheduleStatusCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.UUID
	status     loading.DockScheduleStatus
	actor      string

	guard guard.ConstructorGuard
}

func NewChangeDockScheduleStatusCommand(
	scheduleID kernel.UUID,
	status loading.DockScheduleStatus,
	actor string,
) (ChangeDockScheduleStatusCommand, error) {
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(requireID("scheduleId", scheduleID), status.Validate(), actorErr); err != nil {
		return ChangeDockScheduleStatusCommand{}, err
	}

	return ChangeDockScheduleStatusCommand{
		scheduleID: scheduleID,
		status:     status,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDockScheduleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDockScheduleStatusCommandIsNotConstructed)
}

func (c ChangeDockScheduleStatusCommand) ScheduleID() kernel.UUID { return c.scheduleID }
func (c ChangeDockScheduleStatusCommand) Status() loading.DockScheduleStatus { return c.status }
func (c ChangeDockScheduleStatusCommand) Actor() string { return c.actor }
