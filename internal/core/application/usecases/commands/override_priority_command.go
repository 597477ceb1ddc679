package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"
	"fulfillment/internal/pkg/guard"
)

var ErrOverridePriorityCommandIsNotConstructed = errors.New(
	"OverridePriorityCommand must be created via NewOverridePriorityCommand constructor",
)

// OverridePriorityCommand pins the priority level of an order. Until the
// override is cleared, rescoring the order keeps the pinned level.
type OverridePriorityCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	level   priority.Level
	actor   string
	reason  string

	guard guard.ConstructorGuard
}

func NewOverridePriorityCommand(orderID kernel.UUID, level priority.Level, actor, reason string) (OverridePriorityCommand, error) {
	cmd := OverridePriorityCommand{level: level, guard: guard.NewConstructorGuard()}

	var actorErr, reasonErr error
	cmd.actor, actorErr = requireText("actor", actor)
	cmd.reason, reasonErr = requireText("reason", reason)

	if err := errors.Join(requireID("orderId", orderID), level.Validate(), actorErr, reasonErr); err != nil {
		return OverridePriorityCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

func (c OverridePriorityCommand) Validate() error {
	return c.guard.Validate(ErrOverridePriorityCommandIsNotConstructed)
}

func (c OverridePriorityCommand) OrderID() kernel.UUID { return c.orderID }
func (c OverridePriorityCommand) Level() priority.Level { return c.level }
func (c OverridePriorityCommand) Actor() string { return c.actor }
func (c OverridePriorityCommand) Reason() string { return c.reason }
