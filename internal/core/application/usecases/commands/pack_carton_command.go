package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPackCartonCommandIsNotConstructed = errors.New(
	"PackCartonCommand must be created via NewPackCartonCommand constructor",
)

// PackCartonCommand records a packed carton with its measurements. When no
// carton type is given, the smallest active type that fits itemDimensions
// and holds expectedWeight is chosen.
type PackCartonCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	cartonTypeID     kernel.UUID
	items            []packing.PackedItem
	itemDimensions   []kernel.Dimensions
	expectedWeight   kernel.Weight
	actualWeight     kernel.Weight
	actualDimensions kernel.Dimensions
	packerID         string

	guard guard.ConstructorGuard
}

func NewPackCartonCommand(
	orderID kernel.UUID,
	cartonTypeID kernel.UUID,
	items []packing.PackedItem,
	itemDimensions []kernel.Dimensions,
	expectedWeight kernel.Weight,
	actualWeight kernel.Weight,
	actualDimensions kernel.Dimensions,
	packerID string,
) (PackCartonCommand, error) {
	var itemsErr, dimsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}
	if cartonTypeID.IsZero() && len(itemDimensions) == 0 {
		dimsErr = errs.NewValueIsRequiredError("itemDimensions")
	}
	packerID, packerErr := requireText("packerId", packerID)

	if err := errors.Join(
		requireID("orderId", orderID),
		itemsErr,
		dimsErr,
		actualDimensions.Validate(),
		packerErr,
	); err != nil {
		return PackCartonCommand{}, err
	}

	return PackCartonCommand{
		orderID:          orderID,
		cartonTypeID:     cartonTypeID,
		items:            append([]packing.PackedItem(nil), items...),
		itemDimensions:   append([]kernel.Dimensions(nil), itemDimensions...),
		expectedWeight:   expectedWeight,
		actualWeight:     actualWeight,
		actualDimensions: actualDimensions,
		packerID:         packerID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c PackCartonCommand) Validate() error {
	return c.guard.Validate(ErrPackCartonCommandIsNotConstructed)
}

func (c PackCartonCommand) OrderID() kernel.UUID { return c.orderID }
func (c PackCartonCommand) CartonTypeID() kernel.UUID { return c.cartonTypeID }
func (c PackCartonCommand) Items() []packing.PackedItem { return c.items }
func (c PackCartonCommand) ItemDimensions() []kernel.Dimensions { return c.itemDimensions }
func (c PackCartonCommand) ExpectedWeight() kernel.Weight { return c.expectedWeight }
func (c PackCartonCommand) ActualWeight() kernel.Weight { return c.actualWeight }
func (c PackCartonCommand) ActualDimensions() kernel.Dimensions { return c.actualDimensions }
func (c PackCartonCommand) PackerID() string { return c.packerID }
