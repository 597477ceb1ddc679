package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type RemoveShipmentFromLoadCommandHandler struct {
	uowFactory LoadingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewRemoveShipmentFromLoadCommandHandler(
	uowFactory LoadingUoWFactory,
	audit ports.AuditService,
	clock kernel.Clock,
) RemoveShipmentFromLoadCommandHandler {
	return RemoveShipmentFromLoadCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *RemoveShipmentFromLoadCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentFromLoadCommand) error {
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

	if err = plan.Remove(cmd.ShipmentID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, plan); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "load_plan.remove", cmd.Actor(), "load_plan", plan.ID().String(),
		map[string]any{"shipmentId": cmd.ShipmentID().String()}, h.clock.Now())
	return nil
}
