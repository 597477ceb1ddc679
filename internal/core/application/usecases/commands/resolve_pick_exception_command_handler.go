package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type ResolvePickExceptionCommandHandler struct {
	uowFactory PickingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewResolvePickExceptionCommandHandler(
	uowFactory PickingUoWFactory,
	audit ports.AuditService,
	clock kernel.Clock,
) ResolvePickExceptionCommandHandler {
	return ResolvePickExceptionCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *ResolvePickExceptionCommandHandler) Handle(ctx context.Context, cmd ResolvePickExceptionCommand) error {
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

	lists := uow.PickListRepository()
	list, err := lists.GetForUpdate(ctx, cmd.PickListID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = list.ResolveException(cmd.ExceptionID(), cmd.Actor(), cmd.Resolution(), now); err != nil {
		return err
	}

	if err = lists.Update(ctx, list); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "pick_exception.resolve", cmd.Actor(), "pick_exception", cmd.ExceptionID().String(),
		map[string]any{"pickListId": list.ID().String(), "resolution": cmd.Resolution()}, now)
	return nil
}
