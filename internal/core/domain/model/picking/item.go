package picking

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemStatus is the pick state of one Item. Picked and ShortPicked are terminal.
type ItemStatus int

const (
	UnknownItemStatus ItemStatus = iota
	ItemPending
	ItemPicked
	ItemShortPicked
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		UnknownItemStatus: "unknown",
		ItemPending:       "pending",
		ItemPicked:        "picked",
		ItemShortPicked:   "short_picked",
	}
}

func (s ItemStatus) Validate() error {
	if s <= UnknownItemStatus || s > ItemShortPicked {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s ItemStatus) IsTerminal() bool {
	return s == ItemPicked || s == ItemShortPicked
}

// Item is one line of pick work, built from exactly one allocation.
type Item struct {
	id            kernel.UUID
	allocationID  kernel.UUID
	productID     kernel.UUID
	location      kernel.BinLocation
	toPick        kernel.Quantity
	picked        kernel.Quantity
	status        ItemStatus
	sequence      int
	creationIndex int
	guard         guard.ConstructorGuard
}

// NewItem creates a pending item. creationIndex is the position in which the
// item was produced and breaks ties between items at the same location.
func NewItem(
	id kernel.UUID,
	allocationID kernel.UUID,
	productID kernel.UUID,
	location kernel.BinLocation,
	quantity kernel.Quantity,
	creationIndex int,
) (*Item, error) {
	i := &Item{
		status:        ItemPending,
		picked:        kernel.ZeroQuantity(),
		creationIndex: creationIndex,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("itemId", id),
		requireID("allocationId", allocationID),
		requireID("productId", productID),
		location.Validate(),
		requirePositive("quantityToPick", quantity),
	); err != nil {
		return nil, err
	}

	i.id = id
	i.allocationID = allocationID
	i.productID = productID
	i.location = location
	i.toPick = quantity
	return i, nil
}

// RestoreItem rebuilds an Item from persistence.
func RestoreItem(
	id kernel.UUID,
	allocationID kernel.UUID,
	productID kernel.UUID,
	location kernel.BinLocation,
	toPick kernel.Quantity,
	picked kernel.Quantity,
	status ItemStatus,
	sequence int,
	creationIndex int,
) (*Item, error) {
	i, err := NewItem(id, allocationID, productID, location, toPick, creationIndex)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if picked.GreaterThan(toPick) {
		return nil, errs.NewValueIsOutOfRangeError("quantityPicked", picked, 0, toPick)
	}

	i.picked = picked
	i.status = status
	i.sequence = sequence
	return i, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID { return i.id }
func (i *Item) AllocationID() kernel.UUID { return i.allocationID }
func (i *Item) ProductID() kernel.UUID { return i.productID }
func (i *Item) Location() kernel.BinLocation { return i.location }
func (i *Item) QuantityToPick() kernel.Quantity { return i.toPick }
func (i *Item) QuantityPicked() kernel.Quantity { return i.picked }
func (i *Item) Status() ItemStatus { return i.status }
func (i *Item) Sequence() int { return i.sequence }
func (i *Item) CreationIndex() int { return i.creationIndex }

// Remaining returns quantityToPick - quantityPicked.
func (i *Item) Remaining() kernel.Quantity {
	return i.toPick.Sub(i.picked)
}

// pick records q (clamped) and returns the applied quantity.
func (i *Item) pick(q kernel.Quantity) kernel.Quantity {
	applied := kernel.MinQuantity(q, i.Remaining())
	i.picked = i.picked.Add(applied)
	if i.picked.Equal(i.toPick) {
		i.status = ItemPicked
	} else {
		i.status = ItemShortPicked
	}
	return applied
}

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func requirePositive(name string, q kernel.Quantity) error {
	if !q.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%s is not greater than 0", q))
	}
	return nil
}
