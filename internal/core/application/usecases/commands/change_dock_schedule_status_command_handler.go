package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type ChangeDockScheduleStatusCommandHandler struct {
	uowFactory LoadingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewChangeDockScheduleStatusCommandHandler(
	uowFactory LoadingUoWFactory,
	audit ports.AuditService,
	clock kernel.Clock,
) ChangeDockScheduleStatusCommandHandler {
	return ChangeDockScheduleStatusCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *ChangeDockScheduleStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDockScheduleStatusCommand) error {
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

	repo := uow.DockScheduleRepository()
	schedule, err := repo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		return err
	}

	from := schedule.Status()
	if err = schedule.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, schedule); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "dock.status", cmd.Actor(), "dock_schedule", schedule.ID().String(),
		map[string]any{"from": from.String(), "to": schedule.Status().String()}, h.clock.Now())
	return nil
}
