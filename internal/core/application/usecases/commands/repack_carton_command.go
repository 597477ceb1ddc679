package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRepackCartonCommandIsNotConstructed = errors.New(
	"RepackCartonCommand must be created via NewRepackCartonCommand constructor",
)

// RepackCartonCommand replaces the contents and measurements of a carton on
// the packing floor. The carton has to be validated again afterwards.
type RepackCartonCommand struct { //nolint:recvcheck //using for validation
	cartonID         kernel.UUID
	items            []packing.PackedItem
	expectedWeight   kernel.Weight
	actualWeight     kernel.Weight
	actualDimensions kernel.Dimensions
	packerID         string

	guard guard.ConstructorGuard
}

func NewRepackCartonCommand(
	cartonID kernel.UUID,
	items []packing.PackedItem,
	expectedWeight kernel.Weight,
	actualWeight kernel.Weight,
	actualDimensions kernel.Dimensions,
	packerID string,
) (RepackCartonCommand, error) {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}
	packerID, packerErr := requireText("packerId", packerID)

	if err := errors.Join(requireID("cartonId", cartonID), itemsErr, actualDimensions.Validate(), packerErr); err != nil {
		return RepackCartonCommand{}, err
	}

	return RepackCartonCommand{
		cartonID:         cartonID,
		items:            append([]packing.PackedItem(nil), items...),
		expectedWeight:   expectedWeight,
		actualWeight:     actualWeight,
		actualDimensions: actualDimensions,
		packerID:         packerID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c RepackCartonCommand) Validate() error {
	return c.guard.Validate(ErrRepackCartonCommandIsNotConstructed)
}

func (c RepackCartonCommand) CartonID() kernel.UUID { return c.cartonID }
func (c RepackCartonCommand) Items() []packing.PackedItem { return c.items }
func (c RepackCartonCommand) ExpectedWeight() kernel.Weight { return c.expectedWeight }
func (c RepackCartonCommand) ActualWeight() kernel.Weight { return c.actualWeight }
func (c RepackCartonCommand) ActualDimensions() kernel.Dimensions { return c.actualDimensions }
func (c RepackCartonCommand) PackerID() string { return c.packerID }
