package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrShipCartonCommandIsNotConstructed = errors.New(
	"ShipCartonCommand must be created via NewShipCartonCommand constructor",
)

// ShipCartonCommand moves a carton off the packing floor, either handing it
// over to loading or, with damaged set, taking it out of the flow.
type ShipCartonCommand struct { //nolint:recvcheck //using for validation
	cartonID kernel.UUID
	actor    string
	damaged  bool

	guard guard.ConstructorGuard
}

func NewShipCartonCommand(cartonID kernel.UUID, actor string, damaged bool) (ShipCartonCommand, error) {
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(requireID("cartonId", cartonID), actorErr); err != nil {
		return ShipCartonCommand{}, err
	}

	return ShipCartonCommand{
		cartonID: cartonID,
		actor:    actor,
		damaged:  damaged,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ShipCartonCommand) Validate() error {
	return c.guard.Validate(ErrShipCartonCommandIsNotConstructed)
}

func (c ShipCartonCommand) CartonID() kernel.UUID { return c.cartonID }
func (c ShipCartonCommand) Actor() string { return c.actor }
func (c ShipCartonCommand) Damaged() bool { return c.damaged }
