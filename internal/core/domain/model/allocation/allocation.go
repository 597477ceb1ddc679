package allocation

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAllocationIsNotConstructed is returned when using a zero-value Allocation.
var ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation constructor")

// Line identifies the order line a reservation serves.
type Line struct {
	OrderID     kernel.UUID
	OrderLineID kernel.UUID
	ProductID   kernel.UUID
	WarehouseID kernel.UUID
}

// Validate checks that every identifier is set.
func (l Line) Validate() error {
	return errors.Join(
		wrapID("orderId", l.OrderID),
		wrapID("orderLineId", l.OrderLineID),
		wrapID("productId", l.ProductID),
		wrapID("warehouseId", l.WarehouseID),
	)
}

// Source identifies the inventory record a quantity was reserved from.
// Lot and Serial are optional.
type Source struct {
	InventoryRecordID kernel.UUID
	Location          kernel.BinLocation
	Lot               string
	Serial            string
}

func (s Source) Validate() error {
	return errors.Join(
		wrapID("inventoryRecordId", s.InventoryRecordID),
		s.Location.Validate(),
	)
}

func wrapID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

// Allocation reserves a quantity of one product at one bin location for one
// order line, until it is picked, expires or is cancelled.
//
// Invariants:
//   - allocated quantity is positive and never changes
//   - 0 <= picked <= allocated
//   - picked == allocated implies status Picked
//
// Example:
//
//	a, err := allocation.NewAllocation(kernel.NewUUID(), line, source, qty, now, now.Add(ttl))
//	applied, err := a.UpdatePickedQuantity(kernel.MustQuantity("2"))
type Allocation struct {
	id        kernel.UUID
	line      Line
	source    Source
	allocated kernel.Quantity
	picked    kernel.Quantity
	status    Status
	createdAt time.Time
	expiresAt time.Time
	guard     guard.ConstructorGuard
}

// NewAllocation creates a fresh hold in status Allocated.
func NewAllocation(
	id kernel.UUID,
	line Line,
	source Source,
	quantity kernel.Quantity,
	createdAt time.Time,
	expiresAt time.Time,
) (*Allocation, error) {
	a := &Allocation{
		status: Allocated,
		picked: kernel.ZeroQuantity(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setLine(line),
		a.setSource(source),
		a.setAllocated(quantity),
		a.setTimes(createdAt, expiresAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAllocation rebuilds an Allocation from persistence and re-checks the
// quantity invariants.
func RestoreAllocation(
	id kernel.UUID,
	line Line,
	source Source,
	allocated kernel.Quantity,
	picked kernel.Quantity,
	status Status,
	createdAt time.Time,
	expiresAt time.Time,
) (*Allocation, error) {
	a := &Allocation{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setID(id),
		a.setLine(line),
		a.setSource(source),
		a.setAllocated(allocated),
		a.setTimes(createdAt, expiresAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if picked.GreaterThan(allocated) {
		return nil, errs.NewValueIsOutOfRangeError("pickedQuantity", picked, 0, allocated)
	}

	a.picked = picked
	a.status = status
	return a, nil
}

func (a *Allocation) Validate() error {
	if a == nil {
		return ErrAllocationIsNotConstructed
	}
	return a.guard.Validate(ErrAllocationIsNotConstructed)
}

func (a *Allocation) ID() kernel.UUID { return a.id }
func (a *Allocation) Line() Line { return a.line }
func (a *Allocation) Source() Source { return a.source }
func (a *Allocation) AllocatedQuantity() kernel.Quantity { return a.allocated }
func (a *Allocation) PickedQuantity() kernel.Quantity { return a.picked }
func (a *Allocation) Status() Status { return a.status }
func (a *Allocation) CreatedAt() time.Time { return a.createdAt }
func (a *Allocation) ExpiresAt() time.Time { return a.expiresAt }

// Remaining returns allocated - picked.
func (a *Allocation) Remaining() kernel.Quantity {
	return a.allocated.Sub(a.picked)
}

// IsExpirable reports whether the sweep may expire this allocation at now:
// it is still Allocated, nothing was picked and the hold lapsed.
func (a *Allocation) IsExpirable(now time.Time) bool {
	return a.status == Allocated && a.picked.IsZero() && a.expiresAt.Before(now)
}

// UpdatePickedQuantity records a pick of q against the hold. The quantity is
// clamped to what remains; the applied amount is returned.
func (a *Allocation) UpdatePickedQuantity(q kernel.Quantity) (kernel.Quantity, error) {
	if err := a.status.ValidateMutation(); err != nil {
		return kernel.ZeroQuantity(), err
	}

	applied := kernel.MinQuantity(q, a.Remaining())
	if applied.IsZero() {
		return applied, nil
	}

	a.picked = a.picked.Add(applied)
	if a.picked.Equal(a.allocated) {
		a.status = Picked
	} else {
		a.status = PartiallyPicked
	}

	return applied, nil
}

// Renew extends a live hold to now + ttl.
func (a *Allocation) Renew(ttl time.Duration, now time.Time) error {
	if err := a.status.ValidateMutation(); err != nil {
		return err
	}
	if ttl <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ttl is invalid", fmt.Errorf("%s is not positive", ttl))
	}
	a.expiresAt = now.Add(ttl)
	return nil
}

// Expire flips an expirable allocation to Expired and returns the quantity to
// give back to inventory.
func (a *Allocation) Expire(now time.Time) (kernel.Quantity, error) {
	if !a.IsExpirable(now) {
		return kernel.ZeroQuantity(), errs.NewValueIsInvalidErrorWithCause(
			"allocation is not expirable",
			fmt.Errorf("status %s, picked %s, expires at %s", a.status, a.picked, a.expiresAt.Format(time.RFC3339)),
		)
	}

	newStatus, err := a.status.Expire()
	if err != nil {
		return kernel.ZeroQuantity(), err
	}
	a.status = newStatus
	return a.allocated, nil
}

// Cancel releases the hold. The unpicked remainder is returned so that it can
// be given back to inventory.
func (a *Allocation) Cancel() (kernel.Quantity, error) {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return kernel.ZeroQuantity(), err
	}
	released := a.Remaining()
	a.status = newStatus
	return released, nil
}

func (a *Allocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Allocation) setLine(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	a.line = line
	return nil
}

func (a *Allocation) setSource(source Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	a.source = source
	return nil
}

func (a *Allocation) setAllocated(q kernel.Quantity) error {
	if !q.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("allocatedQuantity is invalid", fmt.Errorf("%s is not greater than 0", q))
	}
	a.allocated = q
	return nil
}

func (a *Allocation) setTimes(createdAt, expiresAt time.Time) error {
	if createdAt.IsZero() || expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt/expiresAt")
	}
	if !expiresAt.After(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expiresAt is invalid",
			fmt.Errorf("%s is not after %s", expiresAt.Format(time.RFC3339), createdAt.Format(time.RFC3339)),
		)
	}
	a.createdAt = createdAt
	a.expiresAt = expiresAt
	return nil
}
