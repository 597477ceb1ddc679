package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/ports"
)

// ConfirmPickCommandHandler applies a pick to the list and to the allocation
// the item was built from, in one transaction. The picked quantity is
// committed in inventory before the transaction commits; a failed inventory
// call rolls the pick back.
//
// The list row is locked for the whole transaction, so two scanners on the same
// list are serialized and a replayed confirmation id always sees the first
// outcome.
type ConfirmPickCommandHandler struct {
	uowFactory PickingUoWFactory
	inventory  ports.InventoryService
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewConfirmPickCommandHandler(
	uowFactory PickingUoWFactory,
	inventory ports.InventoryService,
	audit ports.AuditService,
	clock kernel.Clock,
) ConfirmPickCommandHandler {
	return ConfirmPickCommandHandler{uowFactory: uowFactory, inventory: inventory, audit: audit, clock: clock}
}

func (h *ConfirmPickCommandHandler) Handle(ctx context.Context, cmd ConfirmPickCommand) (picking.PickOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return picking.PickOutcome{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return picking.PickOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lists := uow.PickListRepository()
	list, err := lists.GetForUpdate(ctx, cmd.PickListID())
	if err != nil {
		return picking.PickOutcome{}, err
	}

	now := h.clock.Now()
	outcome, err := list.Pick(cmd.Request(), now)
	if err != nil {
		return picking.PickOutcome{}, err
	}
	if outcome.Replayed {
		return outcome, nil
	}

	var (
		hold    *allocation.Allocation
		applied kernel.Quantity
	)
	if outcome.PickedQty.IsPositive() {
		allocations := uow.AllocationRepository()
		hold, err = allocations.GetForUpdate(ctx, outcome.AllocationID)
		if err != nil {
			return picking.PickOutcome{}, err
		}
		if applied, err = hold.UpdatePickedQuantity(outcome.PickedQty); err != nil {
			return picking.PickOutcome{}, err
		}
		if err = allocations.Update(ctx, hold); err != nil {
			return picking.PickOutcome{}, err
		}
	}

	if err = lists.Update(ctx, list); err != nil {
		return picking.PickOutcome{}, err
	}

	if hold != nil && applied.IsPositive() {
		if err = h.inventory.Commit(ctx, hold.Source().InventoryRecordID, applied); err != nil {
			return picking.PickOutcome{}, asRetryable(err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return picking.PickOutcome{}, err
	}

	req := cmd.Request()
	details := map[string]any{
		"itemId":         outcome.ItemID.String(),
		"quantity":       outcome.PickedQty.String(),
		"itemStatus":     outcome.ItemStatus.String(),
		"confirmationId": req.ConfirmationID,
	}
	if outcome.Exception != nil {
		details["exceptionId"] = outcome.Exception.ID().String()
	}
	recordAudit(ctx, h.audit, "pick.confirm", req.PickerID, "pick_list", list.ID().String(), details, now)
	return outcome, nil
}
