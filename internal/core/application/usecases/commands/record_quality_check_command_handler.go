package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/ports"
)

type RecordQualityCheckCommandHandler struct {
	uowFactory PackingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewRecordQualityCheckCommandHandler(uowFactory PackingUoWFactory, audit ports.AuditService, clock kernel.Clock) RecordQualityCheckCommandHandler {
	return RecordQualityCheckCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *RecordQualityCheckCommandHandler) Handle(ctx context.Context, cmd RecordQualityCheckCommand) (packing.QualityCheck, error) {
	if err := cmd.Validate(); err != nil {
		return packing.QualityCheck{}, err
	}

	now := h.clock.Now()
	check, err := packing.NewQualityCheck(cmd.Criteria(), cmd.MinPassRate(), cmd.InspectorID(), now)
	if err != nil {
		return packing.QualityCheck{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return packing.QualityCheck{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartonRepository()
	carton, err := repo.Get(ctx, cmd.CartonID())
	if err != nil {
		return packing.QualityCheck{}, err
	}

	if err = carton.RecordQualityCheck(check); err != nil {
		return packing.QualityCheck{}, err
	}

	if err = repo.Update(ctx, carton); err != nil {
		return packing.QualityCheck{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return packing.QualityCheck{}, err
	}

	recordAudit(ctx, h.audit, "carton.quality_check", cmd.InspectorID(), "carton", carton.ID().String(),
		map[string]any{
			"passRate":             check.PassRate().String(),
			"requiresRepack":       check.RequiresRepack(),
			"requiresReinspection": check.RequiresReinspection(),
		}, now)
	return check, nil
}
