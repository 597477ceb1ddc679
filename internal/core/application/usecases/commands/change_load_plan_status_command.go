package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeLoadPlanStatusCommandIsNotConstructed = errors.New(
	"ChangeLoadPlanStatusCommand must be created via NewChangeLoadPlanStatusCommand constructor",
)

type ChangeLoadPlanStatusCommand struct { //nolint:recvcheck //using for validation
	loadPlanID kernel.UUID
	status     loading.LoadPlanStatus
	actor      string

	guard guard.ConstructorGuard
}

func NewChangeLoadPlanStatusCommand(
	loadPlanID kernel.UUID,
	status loading.LoadPlanStatus,
	actor string,
) (ChangeLoadPlanStatusCommand, error) {
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(requireID("loadPlanId", loadPlanID), status.Validate(), actorErr); err != nil {
		return ChangeLoadPlanStatusCommand{}, err
	}

	return ChangeLoadPlanStatusCommand{
		loadPlanID: loadPlanID,
		status:     status,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeLoadPlanStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeLoadPlanStatusCommandIsNotConstructed)
}

func (c ChangeLoadPlanStatusCommand) LoadPlanID() kernel.UUID { return c.loadPlanID }
func (c ChangeLoadPlanStatusCommand) Status() loading.LoadPlanStatus { return c.status }
func (c ChangeLoadPlanStatusCommand) Actor() string { return c.actor }
