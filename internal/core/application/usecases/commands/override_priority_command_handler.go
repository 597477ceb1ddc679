package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// OverridePriorityCommandHandler applies operator overrides to scored orders.
type OverridePriorityCommandHandler struct {
	uowFactory PriorityUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewOverridePriorityCommandHandler(uowFactory PriorityUoWFactory, audit ports.AuditService, clock kernel.Clock) OverridePriorityCommandHandler {
	return OverridePriorityCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

// Handle pins the level. The order must have been scored before.
func (h *OverridePriorityCommandHandler) Handle(ctx context.Context, cmd OverridePriorityCommand) error {
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

	if err = current.Override(cmd.Level(), cmd.Actor(), cmd.Reason(), now); err != nil {
		return err
	}

	if err = repo.Save(ctx, current); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "priority.override", cmd.Actor(), "order_priority", cmd.OrderID().String(),
		map[string]any{"level": cmd.Level().String(), "reason": cmd.Reason()}, now)
	return nil
}
