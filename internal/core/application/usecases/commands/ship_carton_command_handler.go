package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type ShipCartonCommandHandler struct {
	uowFactory PackingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewShipCartonCommandHandler(uowFactory PackingUoWFactory, audit ports.AuditService, clock kernel.Clock) ShipCartonCommandHandler {
	return ShipCartonCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

// Handle ships the carton. A carton blocked by a warning or failed
// verification returns packing.ErrToleranceExceeded; one flagged by quality
// returns packing.ErrRepackRequired or packing.ErrReinspectionRequired.
func (h *ShipCartonCommandHandler) Handle(ctx context.Context, cmd ShipCartonCommand) error {
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

	action := "carton.ship"
	if cmd.Damaged() {
		action = "carton.damage"
		err = carton.MarkDamaged()
	} else {
		err = carton.Ship()
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, carton); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, action, cmd.Actor(), "carton", carton.ID().String(),
		map[string]any{"status": carton.Status().String()}, h.clock.Now())
	return nil
}
