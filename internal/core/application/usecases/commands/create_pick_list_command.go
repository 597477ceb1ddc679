package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreatePickListCommandIsNotConstructed = errors.New(
	"CreatePickListCommand must be created via NewCreatePickListCommand constructor",
)

// CreatePickListCommand turns live allocations of one warehouse into a
// sequenced pick list. waveID and pickerID are optional.
type CreatePickListCommand struct { //nolint:recvcheck //using for validation
	warehouseID   kernel.UUID
	waveID        kernel.UUID
	pickerID      string
	allocationIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreatePickListCommand(
	warehouseID kernel.UUID,
	waveID kernel.UUID,
	pickerID string,
	allocationIDs []kernel.UUID,
) (CreatePickListCommand, error) {
	var idsErr error
	if len(allocationIDs) == 0 {
		idsErr = errs.NewValueIsRequiredError("allocationIds")
	}
	for _, id := range allocationIDs {
		if err := requireID("allocationIds", id); err != nil {
			idsErr = err
			break
		}
	}

	if err := errors.Join(requireID("warehouseId", warehouseID), idsErr); err != nil {
		return CreatePickListCommand{}, err
	}

	return CreatePickListCommand{
		warehouseID:   warehouseID,
		waveID:        waveID,
		pickerID:      pickerID,
		allocationIDs: append([]kernel.UUID(nil), allocationIDs...),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePickListCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickListCommandIsNotConstructed)
}

func (c CreatePickListCommand) WarehouseID() kernel.UUID { return c.warehouseID }
func (c CreatePickListCommand) WaveID() kernel.UUID { return c.waveID }
func (c CreatePickListCommand) PickerID() string { return c.pickerID }
func (c CreatePickListCommand) AllocationIDs() []kernel.UUID { return c.allocationIDs }
