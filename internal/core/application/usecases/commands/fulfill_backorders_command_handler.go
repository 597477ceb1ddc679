package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// BackOrderFulfillment reports the stock one sweep found for a backorder.
type BackOrderFulfillment struct {
	BackOrderID   kernel.UUID
	Fulfilled     kernel.Quantity
	AllocationIDs []kernel.UUID
	Status        allocation.BackOrderStatus
}

// FulfillBackordersCommandHandler tries to reserve the remainder of pending
// auto-fulfill backorders. Each backorder runs in its own transaction.
type FulfillBackordersCommandHandler struct {
	uowFactory AllocationUoWFactory
	inventory  ports.InventoryService
	allocator  services.Allocator
	audit      ports.AuditService
	clock      kernel.Clock
	defaultTTL time.Duration
}

func NewFulfillBackordersCommandHandler(
	uowFactory AllocationUoWFactory,
	inventory ports.InventoryService,
	allocator services.Allocator,
	audit ports.AuditService,
	clock kernel.Clock,
	defaultTTL time.Duration,
) FulfillBackordersCommandHandler {
	return FulfillBackordersCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
		allocator:  allocator,
		audit:      audit,
		clock:      clock,
		defaultTTL: defaultTTL,
	}
}

// Handle returns the backorders that received stock. Backorders for which no
// stock was found are left untouched.
func (h *FulfillBackordersCommandHandler) Handle(ctx context.Context, cmd FulfillBackordersCommand) ([]BackOrderFulfillment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ttl := cmd.TTL()
	if ttl == 0 {
		ttl = h.defaultTTL
	}

	reader := h.uowFactory.Create().BackOrderRepository()
	warehouses := []kernel.UUID{cmd.WarehouseID()}
	if cmd.WarehouseID().IsZero() {
		var err error
		warehouses, err = reader.FindWarehousesWithPending(ctx)
		if err != nil {
			return nil, err
		}
	}

	var (
		fulfilled []BackOrderFulfillment
		failures  []error
	)

	for _, warehouseID := range warehouses {
		pending, err := reader.FindPendingBackorders(ctx, warehouseID, true)
		if err != nil {
			failures = append(failures, fmt.Errorf("warehouse %s: %w", warehouseID, err))
			continue
		}

		for _, backOrder := range pending {
			outcome, ok, err := h.fulfillOne(ctx, backOrder, ttl)
			if err != nil {
				failures = append(failures, fmt.Errorf("backorder %s: %w", backOrder.ID(), err))
				continue
			}
			if ok {
				fulfilled = append(fulfilled, outcome)
			}
		}
	}

	return fulfilled, errors.Join(failures...)
}

func (h *FulfillBackordersCommandHandler) fulfillOne(
	ctx context.Context,
	backOrder *allocation.BackOrder,
	ttl time.Duration,
) (BackOrderFulfillment, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BackOrderFulfillment{}, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	remaining := backOrder.Remaining()
	holds, shortfall, err := h.allocator.Reserve(ctx, h.inventory, backOrder.Line(), remaining, ttl, now)
	if err != nil {
		return BackOrderFulfillment{}, false, err
	}
	if len(holds) == 0 {
		return BackOrderFulfillment{}, false, nil
	}

	applied, err := h.persist(ctx, uow, backOrder, holds, remaining.Sub(shortfall))
	if err != nil {
		h.allocator.Release(ctx, h.inventory, holds)
		return BackOrderFulfillment{}, false, err
	}

	outcome := BackOrderFulfillment{
		BackOrderID:   backOrder.ID(),
		Fulfilled:     applied,
		AllocationIDs: make([]kernel.UUID, 0, len(holds)),
		Status:        backOrder.Status(),
	}
	for _, hold := range holds {
		outcome.AllocationIDs = append(outcome.AllocationIDs, hold.ID())
	}

	recordAudit(ctx, h.audit, "backorder.fulfill", "system", "backorder", backOrder.ID().String(),
		map[string]any{"quantity": applied.String(), "status": backOrder.Status().String()}, now)
	return outcome, true, nil
}

func (h *FulfillBackordersCommandHandler) persist(
	ctx context.Context,
	uow AllocationUoW,
	backOrder *allocation.BackOrder,
	holds []*allocation.Allocation,
	reserved kernel.Quantity,
) (kernel.Quantity, error) {
	allocations := uow.AllocationRepository()
	for _, hold := range holds {
		if err := allocations.Add(ctx, hold); err != nil {
			return kernel.ZeroQuantity(), err
		}
	}

	applied, err := backOrder.Fulfill(reserved)
	if err != nil {
		return kernel.ZeroQuantity(), err
	}

	if err = uow.BackOrderRepository().Update(ctx, backOrder); err != nil {
		return kernel.ZeroQuantity(), err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ZeroQuantity(), err
	}

	return applied, nil
}
