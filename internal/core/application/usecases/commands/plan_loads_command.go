package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPlanLoadsCommandIsNotConstructed = errors.New(
	"PlanLoadsCommand must be created via NewPlanLoadsCommand constructor",
)

// PlanLoadsCommand distributes shipments over the open load plans of a
// warehouse in the given order.
type PlanLoadsCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	shipments   []loading.Shipment
	actor       string

	guard guard.ConstructorGuard
}

func NewPlanLoadsCommand(warehouseID kernel.UUID, shipments []loading.Shipment, actor string) (PlanLoadsCommand, error) {
	var shipmentsErr error
	if len(shipments) == 0 {
		shipmentsErr = errs.NewValueIsRequiredError("shipments")
	}
	actor, actorErr := requireText("actor", actor)

	if err := errors.Join(requireID("warehouseId", warehouseID), shipmentsErr, actorErr); err != nil {
		return PlanLoadsCommand{}, err
	}

	return PlanLoadsCommand{
		warehouseID: warehouseID,
		shipments:   append([]loading.Shipment(nil), shipments...),
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c PlanLoadsCommand) Validate() error {
	return c.guard.Validate(ErrPlanLoadsCommandIsNotConstructed)
}

func (c PlanLoadsCommand) WarehouseID() kernel.UUID { return c.warehouseID }
func (c PlanLoadsCommand) Shipments() []loading.Shipment { return c.shipments }
func (c PlanLoadsCommand) Actor() string { return c.actor }
