package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type OverrideCartonVerificationCommandHandler struct {
	uowFactory PackingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewOverrideCartonVerificationCommandHandler(
	uowFactory PackingUoWFactory,
	audit ports.AuditService,
	clock kernel.Clock,
) OverrideCartonVerificationCommandHandler {
	return OverrideCartonVerificationCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *OverrideCartonVerificationCommandHandler) Handle(ctx context.Context, cmd OverrideCartonVerificationCommand) error {
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

	repo := uow.CartonRepository()
	carton, err := repo.Get(ctx, cmd.CartonID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = carton.OverrideVerification(cmd.InspectorID(), cmd.Reason(), now); err != nil {
		return err
	}

	if err = repo.Update(ctx, carton); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "carton.override", cmd.InspectorID(), "carton", carton.ID().String(),
		map[string]any{"reason": cmd.Reason()}, now)
	return nil
}
