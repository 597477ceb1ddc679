package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type ClearPriorityOverrideCommandHandler struct {
	uowFactory PriorityUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewClearPriorityOverrideCommandHandler(uowFactory PriorityUoWFactory, audit ports.AuditService, clock kernel.Clock) ClearPriorityOverrideCommandHandler {
	return ClearPriorityOverrideCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

// Handle clears the override. priority.ErrNoActiveOverride is returned when
// the order has none.
func (h *ClearPriorityOverrideCommandHandler) Handle(ctx context.Context, cmd ClearPriorityOverrideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	repo := uow.PriorityRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = current.ClearOverride(cmd.Actor(), now); err != nil {
		return err
	}

	if err = repo.Save(ctx, current); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "priority.clear_override", cmd.Actor(), "order_priority", cmd.OrderID().String(),
		map[string]any{"level": current.Level().String()}, now)
	return nil
}
