package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelAllocationCommandIsNotConstructed = errors.New(
	"CancelAllocationCommand must be created via NewCancelAllocationCommand constructor",
)

type CancelAllocationCommand struct { //nolint:recvcheck //using for validation
	allocationID kernel.UUID
	actor        string

	guard guard.ConstructorGuard
}

func NewCancelAllocationCommand(allocationID kernel.UUID, actor string) (CancelAllocationCommand, error) {
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(requireID("allocationId", allocationID), actorErr); err != nil {
		return CancelAllocationCommand{}, err
	}

	return CancelAllocationCommand{
		allocationID: allocationID,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CancelAllocationCommand) Validate() error {
	return c.guard.Validate(ErrCancelAllocationCommandIsNotConstructed)
}

func (c CancelAllocationCommand) AllocationID() kernel.UUID { return c.allocationID }
func (c CancelAllocationCommand) Actor() string { return c.actor }
