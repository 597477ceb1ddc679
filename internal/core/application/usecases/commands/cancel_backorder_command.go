package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelBackOrderCommandIsNotConstructed = errors.New(
	"CancelBackOrderCommand must be created via NewCancelBackOrderCommand constructor",
)

type CancelBackOrderCommand struct { //nolint:recvcheck //using for validation
	backOrderID kernel.UUID
	actor       string

	guard guard.ConstructorGuard
}

func NewCancelBackOrderCommand(backOrderID kernel.UUID, actor string) (CancelBackOrderCommand, error) {
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(requireID("backOrderId", backOrderID), actorErr); err != nil {
		return CancelBackOrderCommand{}, err
	}

	return CancelBackOrderCommand{
		backOrderID: backOrderID,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CancelBackOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelBackOrderCommandIsNotConstructed)
}

func (c CancelBackOrderCommand) BackOrderID() kernel.UUID { return c.backOrderID }
func (c CancelBackOrderCommand) Actor() string { return c.actor }
