package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AllocationRequest asks for quantity of one order line.
type AllocationRequest struct {
	Line     allocation.Line
	Quantity kernel.Quantity
	TTL      time.Duration

	// Backorder options, used only when a shortfall opens a new backorder.
	AutoFulfill             bool
	ExpectedFulfillmentDate *time.Time
}

// Validate checks the request.
func (r AllocationRequest) Validate() error {
	var qtyErr, ttlErr error
	if !r.Quantity.IsPositive() {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%s is not greater than 0", r.Quantity))
	}
	if r.TTL <= 0 {
		ttlErr = errs.NewValueIsInvalidErrorWithCause("ttl is invalid", fmt.Errorf("%s is not positive", r.TTL))
	}
	return errors.Join(r.Line.Validate(), qtyErr, ttlErr)
}

// AllocationResult is what one allocation attempt produced. BackOrder is set
// when part of the quantity could not be reserved; BackOrderCreated tells a new
// backorder apart from a grown one.
type AllocationResult struct {
	Allocations      []*allocation.Allocation
	Allocated        kernel.Quantity
	Shortfall        kernel.Quantity
	BackOrder        *allocation.BackOrder
	BackOrderCreated bool
}

// Allocator reserves inventory for order lines.
//
// Eligible records come from the inventory collaborator already ordered by the
// rotation policy. Each record is asked for min(available, remaining) through
// the collaborator's reserve-or-fail call:
//   - allocation.ErrInsufficientInventory means another caller got there first,
//     the allocator moves on to the next record
//   - any other failure stops the line; whatever this attempt reserved is
//     released again and the failure is returned as errs.RetryableError
//
// Example:
//
//	allocator := NewAllocator()
//	result, err := allocator.Allocate(ctx, inventory, req, openBackOrder, now)
//	if errs.IsRetryable(err) {
//	    // nothing was reserved, the caller may try again
//	}
type Allocator struct{}

func NewAllocator() Allocator {
	return Allocator{}
}

// Allocate reserves req.Quantity and backorders the remainder. openBackOrder
// is the open backorder of the line, if any; it is grown instead of opening a
// second one.
func (a Allocator) Allocate(
	ctx context.Context,
	inventory ports.InventoryService,
	req AllocationRequest,
	openBackOrder *allocation.BackOrder,
	now time.Time,
) (AllocationResult, error) {
	if err := req.Validate(); err != nil {
		return AllocationResult{}, err
	}

	allocations, shortfall, err := a.Reserve(ctx, inventory, req.Line, req.Quantity, req.TTL, now)
	if err != nil {
		return AllocationResult{}, err
	}

	result := AllocationResult{
		Allocations: allocations,
		Allocated:   req.Quantity.Sub(shortfall),
		Shortfall:   shortfall,
	}
	if shortfall.IsZero() {
		return result, nil
	}

	if openBackOrder != nil {
		if err = openBackOrder.Grow(shortfall); err != nil {
			a.Release(ctx, inventory, allocations)
			return AllocationResult{}, err
		}
		result.BackOrder = openBackOrder
		return result, nil
	}

	backOrder, err := allocation.NewBackOrder(kernel.NewUUID(), req.Line, shortfall, req.ExpectedFulfillmentDate, req.AutoFulfill, now)
	if err != nil {
		a.Release(ctx, inventory, allocations)
		return AllocationResult{}, err
	}
	result.BackOrder = backOrder
	result.BackOrderCreated = true
	return result, nil
}

// Reserve reserves up to quantity for line across the eligible records and
// returns the allocations together with the part that could not be reserved.
// It never backorders.
func (a Allocator) Reserve(
	ctx context.Context,
	inventory ports.InventoryService,
	line allocation.Line,
	quantity kernel.Quantity,
	ttl time.Duration,
	now time.Time,
) ([]*allocation.Allocation, kernel.Quantity, error) {
	records, err := inventory.EligibleRecords(ctx, line.ProductID, line.WarehouseID)
	if err != nil {
		return nil, quantity, asRetryable("inventory", err)
	}

	remaining := quantity
	allocations := make([]*allocation.Allocation, 0, len(records))

	for _, record := range records {
		if remaining.IsZero() {
			break
		}

		take := kernel.MinQuantity(record.Available, remaining)
		if !take.IsPositive() {
			continue
		}

		if err = inventory.Reserve(ctx, record.ID, take); err != nil {
			if errors.Is(err, allocation.ErrInsufficientInventory) {
				continue
			}
			a.Release(ctx, inventory, allocations)
			return nil, quantity, asRetryable("inventory", err)
		}

		hold, err := allocation.NewAllocation(
			kernel.NewUUID(),
			line,
			allocation.Source{
				InventoryRecordID: record.ID,
				Location:          record.Location,
				Lot:               record.Lot,
				Serial:            record.Serial,
			},
			take,
			now,
			now.Add(ttl),
		)
		if err != nil {
			_ = inventory.Release(context.WithoutCancel(ctx), record.ID, take)
			a.Release(ctx, inventory, allocations)
			return nil, quantity, err
		}

		allocations = append(allocations, hold)
		remaining = remaining.Sub(take)
	}

	return allocations, remaining, nil
}

// Release gives back the reservations of a failed attempt, also when ctx
// already expired. Errors are ignored; the holds were never persisted.
func (a Allocator) Release(ctx context.Context, inventory ports.InventoryService, allocations []*allocation.Allocation) {
	ctx = context.WithoutCancel(ctx)
	for _, hold := range allocations {
		_ = inventory.Release(ctx, hold.Source().InventoryRecordID, hold.AllocatedQuantity())
	}
}

func asRetryable(collaborator string, err error) error {
	if errs.IsRetryable(err) {
		return err
	}
	return errs.NewRetryableError(collaborator, err)
}
