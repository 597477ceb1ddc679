package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrClearPriorityOverrideCommandIsNotConstructed = errors.New(
	"ClearPriorityOverrideCommand must be created via NewClearPriorityOverrideCommand constructor",
)

// ClearPriorityOverrideCommand removes an operator override and restores the
// level computed from the last score.
type ClearPriorityOverrideCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

func NewClearPriorityOverrideCommand(orderID kernel.UUID, actor string) (ClearPriorityOverrideCommand, error) {
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(requireID("orderId", orderID), actorErr); err != nil {
		return ClearPriorityOverrideCommand{}, err
	}

	return ClearPriorityOverrideCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ClearPriorityOverrideCommand) Validate() error {
	return c.guard.Validate(ErrClearPriorityOverrideCommandIsNotConstructed)
}

func (c ClearPriorityOverrideCommand) OrderID() kernel.UUID { return c.orderID }
func (c ClearPriorityOverrideCommand) Actor() string { return c.actor }
