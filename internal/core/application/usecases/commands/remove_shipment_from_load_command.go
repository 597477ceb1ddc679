package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveShipmentFromLoadCommandIsNotConstructed = errors.New(
	"RemoveShipmentFromLoadCommand must be created via NewRemoveShipmentFromLoadCommand constructor",
)

type RemoveShipmentFromLoadCommand struct { //nolint:recvcheck //using for validation
	loadPlanID kernel.UUID
	shipmentID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

func NewRemoveShipmentFromLoadCommand(loadPlanID, shipmentID kernel.UUID, actor string) (RemoveShipmentFromLoadCommand, error) {
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(requireID("loadPlanId", loadPlanID), requireID("shipmentId", shipmentID), actorErr); err != nil {
		return RemoveShipmentFromLoadCommand{}, err
	}

	return RemoveShipmentFromLoadCommand{
		loadPlanID: loadPlanID,
		shipmentID: shipmentID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveShipmentFromLoadCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentFromLoadCommandIsNotConstructed)
}

func (c RemoveShipmentFromLoadCommand) LoadPlanID() kernel.UUID { return c.loadPlanID }
func (c RemoveShipmentFromLoadCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c RemoveShipmentFromLoadCommand) Actor() string { return c.actor }
