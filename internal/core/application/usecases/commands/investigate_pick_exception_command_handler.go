package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type InvestigatePickExceptionCommandHandler struct {
	uowFactory PickingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewInvestigatePickExceptionCommandHandler(
	uowFactory PickingUoWFactory,
	audit ports.AuditService,
	clock kernel.Clock,
) InvestigatePickExceptionCommandHandler {
	return InvestigatePickExceptionCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *InvestigatePickExceptionCommandHandler) Handle(ctx context.Context, cmd InvestigatePickExceptionCommand) error {
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

	if err = list.InvestigateException(cmd.ExceptionID()); err != nil {
		return err
	}

	if err = lists.Update(ctx, list); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "pick_exception.investigate", cmd.Actor(), "pick_exception", cmd.ExceptionID().String(),
		map[string]any{"pickListId": list.ID().String()}, h.clock.Now())
	return nil
}
