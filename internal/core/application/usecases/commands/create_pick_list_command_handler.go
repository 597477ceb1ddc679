package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type CreatePickListCommandHandler struct {
	uowFactory PickingUoWFactory
	sequencer  services.PickSequencer
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewCreatePickListCommandHandler(
	uowFactory PickingUoWFactory,
	sequencer services.PickSequencer,
	audit ports.AuditService,
	clock kernel.Clock,
) CreatePickListCommandHandler {
	return CreatePickListCommandHandler{uowFactory: uowFactory, sequencer: sequencer, audit: audit, clock: clock}
}

// Handle loads the allocations in the given order, builds one item per
// allocation and stores the list in walk order.
func (h *CreatePickListCommandHandler) Handle(ctx context.Context, cmd CreatePickListCommand) (*picking.PickList, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	allocations := make([]*allocation.Allocation, 0, len(cmd.AllocationIDs()))
	for _, id := range cmd.AllocationIDs() {
		hold, err := uow.AllocationRepository().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !hold.Line().WarehouseID.IsEqual(cmd.WarehouseID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("allocationIds",
				fmt.Errorf("allocation %s belongs to warehouse %s", id, hold.Line().WarehouseID))
		}
		allocations = append(allocations, hold)
	}

	items, err := h.sequencer.BuildItems(allocations)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	list, err := picking.NewPickList(kernel.NewUUID(), cmd.WarehouseID(), cmd.WaveID(), cmd.PickerID(), items, now)
	if err != nil {
		return nil, err
	}

	if err = uow.PickListRepository().Add(ctx, list); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.audit, "pick_list.create", "system", "pick_list", list.ID().String(),
		map[string]any{"items": list.TotalPicks()}, now)
	return list, nil
}
