package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AllocateOrderLineCommandHandler runs the allocator for one order line and
// persists the holds together with the backorder of the shortfall.
//
// Inventory reservations are made by the collaborator before the transaction
// commits. When persisting fails they are released again, so the collaborator
// never keeps stock that no allocation row accounts for.
type AllocateOrderLineCommandHandler struct {
	uowFactory AllocationUoWFactory
	inventory  ports.InventoryService
	allocator  services.Allocator
	audit      ports.AuditService
	clock      kernel.Clock
	defaultTTL time.Duration
}

func NewAllocateOrderLineCommandHandler(
	uowFactory AllocationUoWFactory,
	inventory ports.InventoryService,
	allocator services.Allocator,
	audit ports.AuditService,
	clock kernel.Clock,
	defaultTTL time.Duration,
) AllocateOrderLineCommandHandler {
	return AllocateOrderLineCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
		allocator:  allocator,
		audit:      audit,
		clock:      clock,
		defaultTTL: defaultTTL,
	}
}

func (h *AllocateOrderLineCommandHandler) Handle(ctx context.Context, cmd AllocateOrderLineCommand) (services.AllocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.AllocationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.AllocationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	backOrders := uow.BackOrderRepository()
	open, err := backOrders.FindOpenForLine(ctx, cmd.Line().OrderLineID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return services.AllocationResult{}, err
	}

	ttl := cmd.TTL()
	if ttl == 0 {
		ttl = h.defaultTTL
	}

	now := h.clock.Now()
	result, err := h.allocator.Allocate(ctx, h.inventory, services.AllocationRequest{
		Line:                    cmd.Line(),
		Quantity:                cmd.Quantity(),
		TTL:                     ttl,
		AutoFulfill:             cmd.AutoFulfill(),
		ExpectedFulfillmentDate: cmd.ExpectedFulfillmentDate(),
	}, open, now)
	if err != nil {
		return services.AllocationResult{}, err
	}

	if err = h.persist(ctx, uow, result); err != nil {
		h.allocator.Release(ctx, h.inventory, result.Allocations)
		return services.AllocationResult{}, err
	}

	for _, hold := range result.Allocations {
		recordAudit(ctx, h.audit, "allocation.create", "system", "allocation", hold.ID().String(),
			map[string]any{
				"orderLineId": cmd.Line().OrderLineID.String(),
				"quantity":    hold.AllocatedQuantity().String(),
			}, now)
	}
	if result.BackOrder != nil {
		recordAudit(ctx, h.audit, "backorder.upsert", "system", "backorder", result.BackOrder.ID().String(),
			map[string]any{"shortfall": result.Shortfall.String()}, now)
	}

	return result, nil
}

func (h *AllocateOrderLineCommandHandler) persist(ctx context.Context, uow AllocationUoW, result services.AllocationResult) error {
	allocations := uow.AllocationRepository()
	for _, hold := range result.Allocations {
		if err := allocations.Add(ctx, hold); err != nil {
			return err
		}
	}

	if result.BackOrder != nil {
		backOrders := uow.BackOrderRepository()
		var err error
		if result.BackOrderCreated {
			err = backOrders.Add(ctx, result.BackOrder)
		} else {
			err = backOrders.Update(ctx, result.BackOrder)
		}
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
