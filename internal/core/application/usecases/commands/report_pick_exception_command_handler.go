package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/ports"
)

type ReportPickExceptionCommandHandler struct {
	uowFactory PickingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewReportPickExceptionCommandHandler(uowFactory PickingUoWFactory, audit ports.AuditService, clock kernel.Clock) ReportPickExceptionCommandHandler {
	return ReportPickExceptionCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *ReportPickExceptionCommandHandler) Handle(ctx context.Context, cmd ReportPickExceptionCommand) (*picking.Exception, error) {
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

	lists := uow.PickListRepository()
	list, err := lists.GetForUpdate(ctx, cmd.PickListID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	exception, err := list.ReportException(
		cmd.ItemID(), cmd.Type(), cmd.ExpectedQuantity(), cmd.ActualQuantity(), cmd.ReportedBy(), now)
	if err != nil {
		return nil, err
	}

	if err = lists.Update(ctx, list); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.audit, "pick_exception.report", cmd.ReportedBy(), "pick_exception", exception.ID().String(),
		map[string]any{"pickListId": list.ID().String(), "type": exception.Type().String()}, now)
	return exception, nil
}
