package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// CancelAllocationCommandHandler cancels a hold and gives its unpicked
// remainder back to inventory before committing.
type CancelAllocationCommandHandler struct {
	uowFactory AllocationUoWFactory
	inventory  ports.InventoryService
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewCancelAllocationCommandHandler(
	uowFactory AllocationUoWFactory,
	inventory ports.InventoryService,
	audit ports.AuditService,
	clock kernel.Clock,
) CancelAllocationCommandHandler {
	return CancelAllocationCommandHandler{uowFactory: uowFactory, inventory: inventory, audit: audit, clock: clock}
}

// Handle returns the released quantity.
func (h *CancelAllocationCommandHandler) Handle(ctx context.Context, cmd CancelAllocationCommand) (kernel.Quantity, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ZeroQuantity(), err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ZeroQuantity(), err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AllocationRepository()
	hold, err := repo.GetForUpdate(ctx, cmd.AllocationID())
	if err != nil {
		return kernel.ZeroQuantity(), err
	}

	released, err := hold.Cancel()
	if err != nil {
		return kernel.ZeroQuantity(), err
	}

	if err = repo.Update(ctx, hold); err != nil {
		return kernel.ZeroQuantity(), err
	}

	if released.IsPositive() {
		if err = h.inventory.Release(ctx, hold.Source().InventoryRecordID, released); err != nil {
			return kernel.ZeroQuantity(), asRetryable(err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ZeroQuantity(), err
	}

	recordAudit(ctx, h.audit, "allocation.cancel", cmd.Actor(), "allocation", hold.ID().String(),
		map[string]any{"released": released.String()}, h.clock.Now())
	return released, nil
}
