package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateLoadPlanCommandIsNotConstructed = errors.New(
	"CreateLoadPlanCommand must be created via NewCreateLoadPlanCommand constructor",
)

type CreateLoadPlanCommand struct { //nolint:recvcheck //using for validation
	warehouseID    kernel.UUID
	vehicleID      string
	capacityWeight kernel.Weight
	capacityVolume kernel.Volume
	actor          string

	guard guard.ConstructorGuard
}

func NewCreateLoadPlanCommand(
	warehouseID kernel.UUID,
	vehicleID string,
	capacityWeight kernel.Weight,
	capacityVolume kernel.Volume,
	actor string,
) (CreateLoadPlanCommand, error) {
	vehicleID, vehicleErr := requireText("vehicleId", vehicleID)
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(
		requireID("warehouseId", warehouseID),
		vehicleErr,
		requirePositive("capacityWeight", capacityWeight),
		requirePositive("capacityVolume", capacityVolume),
		actorErr,
	); err != nil {
		return CreateLoadPlanCommand{}, err
	}

	return CreateLoadPlanCommand{
		warehouseID:    warehouseID,
		vehicleID:      vehicleID,
		capacityWeight: capacityWeight,
		capacityVolume: capacityVolume,
		actor:          actor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLoadPlanCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadPlanCommandIsNotConstructed)
}

func (c CreateLoadPlanCommand) WarehouseID() kernel.UUID { return c.warehouseID }
func (c CreateLoadPlanCommand) VehicleID() string { return c.vehicleID }
func (c CreateLoadPlanCommand) CapacityWeight() kernel.Weight { return c.capacityWeight }
func (c CreateLoadPlanCommand) CapacityVolume() kernel.Volume { return c.capacityVolume }
func (c CreateLoadPlanCommand) Actor() string { return c.actor }
