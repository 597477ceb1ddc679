package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type CancelBackOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewCancelBackOrderCommandHandler(uowFactory AllocationUoWFactory, audit ports.AuditService, clock kernel.Clock) CancelBackOrderCommandHandler {
	return CancelBackOrderCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *CancelBackOrderCommandHandler) Handle(ctx context.Context, cmd CancelBackOrderCommand) error {
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

	repo := uow.BackOrderRepository()
	backOrder, err := repo.Get(ctx, cmd.BackOrderID())
	if err != nil {
		return err
	}

	if err = backOrder.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, backOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "backorder.cancel", cmd.Actor(), "backorder", backOrder.ID().String(),
		map[string]any{"remaining": backOrder.Remaining().String()}, h.clock.Now())
	return nil
}
