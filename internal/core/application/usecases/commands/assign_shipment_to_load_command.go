package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignShipmentToLoadCommandIsNotConstructed = errors.New(
	"AssignShipmentToLoadCommand must be created via NewAssignShipmentToLoadCommand constructor",
)

// AssignShipmentToLoadCommand puts one shipment on a load plan. With an
// override reason set, capacity limits are ignored.
type AssignShipmentToLoadCommand struct { //nolint:recvcheck //using for validation
	loadPlanID     kernel.UUID
	shipment       loading.Shipment
	actor          string
	overrideReason string

	guard guard.ConstructorGuard
}

func NewAssignShipmentToLoadCommand(
	loadPlanID kernel.UUID,
	shipment loading.Shipment,
	actor string,
	overrideReason string,
) (AssignShipmentToLoadCommand, error) {
	var shipmentErr error
	if shipment.ID().IsZero() {
		shipmentErr = errs.NewValueIsRequiredError("shipment")
	}
	actor, actorErr := requireText("actor", actor)

	if err := errors.Join(requireID("loadPlanId", loadPlanID), shipmentErr, actorErr); err != nil {
		return AssignShipmentToLoadCommand{}, err
	}

	return AssignShipmentToLoadCommand{
		loadPlanID:     loadPlanID,
		shipment:       shipment,
		actor:          actor,
		overrideReason: overrideReason,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AssignShipmentToLoadCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipmentToLoadCommandIsNotConstructed)
}

func (c AssignShipmentToLoadCommand) LoadPlanID() kernel.UUID { return c.loadPlanID }
func (c AssignShipmentToLoadCommand) Shipment() loading.Shipment { return c.shipment }
func (c AssignShipmentToLoadCommand) Actor() string { return c.actor }
func (c AssignShipmentToLoadCommand) OverrideReason() string { return c.overrideReason }
func (c AssignShipmentToLoadCommand) IsOverride() bool { return c.overrideReason != "" }
