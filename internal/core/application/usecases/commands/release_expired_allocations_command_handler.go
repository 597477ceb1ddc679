package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// ReleaseExpiredAllocationsCommandHandler expires lapsed holds and gives their
// quantity back to inventory.
//
// Each candidate runs in its own transaction. The row is flipped with a
// compare-and-swap on (status, picked quantity); only when the swap matched
// and the transaction committed is the quantity released. A hold that was
// picked or expired by someone else in the meantime is skipped, so running
// the sweep twice never releases the same stock twice. A release that fails
// after the commit is reported and not retried; the quantity stays reserved
// until an operator releases it.
type ReleaseExpiredAllocationsCommandHandler struct {
	uowFactory AllocationUoWFactory
	inventory  ports.InventoryService
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewReleaseExpiredAllocationsCommandHandler(
	uowFactory AllocationUoWFactory,
	inventory ports.InventoryService,
	audit ports.AuditService,
	clock kernel.Clock,
) ReleaseExpiredAllocationsCommandHandler {
	return ReleaseExpiredAllocationsCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
		audit:      audit,
		clock:      clock,
	}
}

// Handle returns the ids that were released. Failures of single holds do not
// stop the sweep; they are joined into the returned error.
func (h *ReleaseExpiredAllocationsCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseExpiredAllocationsCommand,
) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	candidates, err := h.uowFactory.Create().AllocationRepository().FindExpirable(ctx, now, cmd.Limit())
	if err != nil {
		return nil, err
	}

	released := make([]kernel.UUID, 0, len(candidates))
	var failures []error

	for _, candidate := range candidates {
		ok, err := h.releaseOne(ctx, candidate, now)
		if err != nil {
			failures = append(failures, fmt.Errorf("allocation %s: %w", candidate.ID(), err))
			continue
		}
		if !ok {
			continue
		}

		released = append(released, candidate.ID())
		recordAudit(ctx, h.audit, "allocation.expire", "system", "allocation", candidate.ID().String(),
			map[string]any{"quantity": candidate.AllocatedQuantity().String()}, now)
	}

	return released, errors.Join(failures...)
}

func (h *ReleaseExpiredAllocationsCommandHandler) releaseOne(
	ctx context.Context,
	hold *allocation.Allocation,
	now time.Time,
) (bool, error) {
	quantity, err := hold.Expire(now)
	if err != nil {
		// Listed as a candidate but no longer expirable.
		return false, nil //nolint:nilerr // not a failure of this sweep
	}

	expired, err := h.expire(ctx, hold)
	if err != nil || !expired {
		return false, err
	}

	if err = h.inventory.Release(ctx, hold.Source().InventoryRecordID, quantity); err != nil {
		return false, fmt.Errorf("expired but %s not released: %w", quantity, err)
	}
	return true, nil
}

// expire stores the Expired status and reports whether this sweep owns it.
func (h *ReleaseExpiredAllocationsCommandHandler) expire(ctx context.Context, hold *allocation.Allocation) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	swapped, err := uow.AllocationRepository().CompareAndExpire(ctx, hold)
	if err != nil || !swapped {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
