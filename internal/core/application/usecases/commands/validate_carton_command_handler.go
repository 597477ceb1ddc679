package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/ports"
)

// ValidateCartonCommandHandler runs the weight and dimension verification of
// a packed carton. A failing verification is a result, not an error: the
// carton stays packed and the caller sees the failed checks.
type ValidateCartonCommandHandler struct {
	uowFactory PackingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
	defaults   packing.Tolerances
}

func NewValidateCartonCommandHandler(
	uowFactory PackingUoWFactory,
	audit ports.AuditService,
	clock kernel.Clock,
	defaults packing.Tolerances,
) ValidateCartonCommandHandler {
	return ValidateCartonCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock, defaults: defaults}
}

func (h *ValidateCartonCommandHandler) Handle(ctx context.Context, cmd ValidateCartonCommand) (packing.ValidationResult, error) {
	if err := cmd.Validate(); err != nil {
		return packing.ValidationResult{}, err
	}

	tolerances := h.defaults
	if cmd.Tolerances() != nil {
		tolerances = *cmd.Tolerances()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return packing.ValidationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartonRepository()
	carton, err := repo.Get(ctx, cmd.CartonID())
	if err != nil {
		return packing.ValidationResult{}, err
	}

	now := h.clock.Now()
	result, err := carton.ValidateMeasurements(tolerances, cmd.InspectorID(), now)
	if err != nil {
		return packing.ValidationResult{}, err
	}

	if err = repo.Update(ctx, carton); err != nil {
		return packing.ValidationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return packing.ValidationResult{}, err
	}

	recordAudit(ctx, h.audit, "carton.validate", cmd.InspectorID(), "carton", carton.ID().String(),
		map[string]any{
			"weight":    result.Weight.Status.String(),
			"dimension": result.Dimension.Status.String(),
			"status":    carton.Status().String(),
		}, now)
	return result, nil
}
