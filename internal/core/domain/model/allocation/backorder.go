package allocation

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrBackOrderIsNotConstructed is returned when using a zero-value BackOrder.
var ErrBackOrderIsNotConstructed = errors.New("BackOrder must be created via NewBackOrder constructor")

// BackOrder tracks the part of an order line that could not be reserved. It is
// grown by later allocation attempts on the same line and consumed by the
// fulfillment sweep.
type BackOrder struct {
	id                      kernel.UUID
	line                    Line
	backordered             kernel.Quantity
	fulfilled               kernel.Quantity
	status                  BackOrderStatus
	expectedFulfillmentDate *time.Time
	autoFulfill             bool
	createdAt               time.Time
	guard                   guard.ConstructorGuard
}

// NewBackOrder opens a Pending backorder for quantity.
func NewBackOrder(
	id kernel.UUID,
	line Line,
	quantity kernel.Quantity,
	expectedFulfillmentDate *time.Time,
	autoFulfill bool,
	createdAt time.Time,
) (*BackOrder, error) {
	b := &BackOrder{
		status:                  Pending,
		fulfilled:               kernel.ZeroQuantity(),
		expectedFulfillmentDate: expectedFulfillmentDate,
		autoFulfill:             autoFulfill,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setLine(line),
		b.setBackordered(quantity),
		b.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBackOrder rebuilds a BackOrder from persistence.
func RestoreBackOrder(
	id kernel.UUID,
	line Line,
	backordered kernel.Quantity,
	fulfilled kernel.Quantity,
	status BackOrderStatus,
	expectedFulfillmentDate *time.Time,
	autoFulfill bool,
	createdAt time.Time,
) (*BackOrder, error) {
	b := &BackOrder{
		expectedFulfillmentDate: expectedFulfillmentDate,
		autoFulfill:             autoFulfill,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setLine(line),
		b.setBackordered(backordered),
		b.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if fulfilled.GreaterThan(backordered) {
		return nil, errs.NewValueIsOutOfRangeError("fulfilledQuantity", fulfilled, 0, backordered)
	}

	b.fulfilled = fulfilled
	b.status = status
	return b, nil
}

func (b *BackOrder) Validate() error {
	if b == nil {
		return ErrBackOrderIsNotConstructed
	}
	return b.guard.Validate(ErrBackOrderIsNotConstructed)
}

func (b *BackOrder) ID() kernel.UUID { return b.id }
func (b *BackOrder) Line() Line { return b.line }
func (b *BackOrder) BackorderedQuantity() kernel.Quantity { return b.backordered }
func (b *BackOrder) FulfilledQuantity() kernel.Quantity { return b.fulfilled }
func (b *BackOrder) Status() BackOrderStatus { return b.status }
func (b *BackOrder) ExpectedFulfillmentDate() *time.Time { return b.expectedFulfillmentDate }
func (b *BackOrder) AutoFulfill() bool { return b.autoFulfill }
func (b *BackOrder) CreatedAt() time.Time { return b.createdAt }

// Remaining returns backordered - fulfilled.
func (b *BackOrder) Remaining() kernel.Quantity {
	return b.backordered.Sub(b.fulfilled)
}

// Grow adds another shortfall of the same line to an open backorder.
func (b *BackOrder) Grow(q kernel.Quantity) error {
	if err := b.status.validateOpen("grow"); err != nil {
		return err
	}
	if !q.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%s is not greater than 0", q))
	}
	b.backordered = b.backordered.Add(q)
	return nil
}

// Fulfill records that q of the remainder was reserved. q is clamped to the
// remainder and the applied quantity is returned.
func (b *BackOrder) Fulfill(q kernel.Quantity) (kernel.Quantity, error) {
	if err := b.status.validateOpen("fulfill"); err != nil {
		return kernel.ZeroQuantity(), err
	}

	applied := kernel.MinQuantity(q, b.Remaining())
	if applied.IsZero() {
		return applied, nil
	}

	b.fulfilled = b.fulfilled.Add(applied)
	if b.fulfilled.Equal(b.backordered) {
		b.status = Fulfilled
	} else {
		b.status = PartiallyFulfilled
	}
	return applied, nil
}

// Cancel closes an open backorder without fulfilling the remainder.
func (b *BackOrder) Cancel() error {
	if err := b.status.validateOpen("cancel"); err != nil {
		return err
	}
	b.status = BackOrderCancelled
	return nil
}

func (b *BackOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *BackOrder) setLine(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	b.line = line
	return nil
}

func (b *BackOrder) setBackordered(q kernel.Quantity) error {
	if !q.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("backorderedQuantity is invalid", fmt.Errorf("%s is not greater than 0", q))
	}
	b.backordered = q
	return nil
}

func (b *BackOrder) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	b.createdAt = t
	return nil
}
