package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type RepackCartonCommandHandler struct {
	uowFactory PackingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewRepackCartonCommandHandler(uowFactory PackingUoWFactory, audit ports.AuditService, clock kernel.Clock) RepackCartonCommandHandler {
	return RepackCartonCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *RepackCartonCommandHandler) Handle(ctx context.Context, cmd RepackCartonCommand) error {
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
	if err = carton.Repack(cmd.Items(), cmd.ExpectedWeight(), cmd.ActualWeight(), cmd.ActualDimensions(), now); err != nil {
		return err
	}

	if err = repo.Update(ctx, carton); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, "carton.repack", cmd.PackerID(), "carton", carton.ID().String(), nil, now)
	return nil
}
