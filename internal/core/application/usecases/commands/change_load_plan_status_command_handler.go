package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type ChangeLoadPlanStatusCommandHandler struct {
	uowFactory LoadingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewChangeLoadPlanStatusCommandHandler(
	uowFactory LoadingUoWFactory,
	audit ports.AuditService,
	clock kernel.Clock,
) ChangeLoadPlanStatusCommandHandler {
	return ChangeLoadPlanStatusCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *ChangeLoadPlanStatusCommandHandler) Handle(ctx context.Context, cmd ChangeLoadPlanStatusCommand) error {
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

	repo := uow.LoadPlanRepository()
	plan, err := repo.GetForUpdate(ctx, cmd.LoadPlanID())
	if err != nil {
		return err
	}

	from := plan.Status()
	if err = plan.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, plan); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "load_plan.status", cmd.Actor(), "load_plan", plan.ID().String(),
		map[string]any{"from": from.String(), "to": plan.Status().String()}, h.clock.Now())
	return nil
}
