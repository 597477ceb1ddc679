package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
)

// AssignmentResult is the answer to one assignment. A rejected shipment is a
// result with a reason, not an error.
type AssignmentResult struct {
	Accepted          bool
	Reason            loading.RejectionReason
	WeightUtilization decimal.Decimal
	VolumeUtilization decimal.Decimal
}

// AssignShipmentToLoadCommandHandler evaluates capacity against the plan row
// locked for update, so concurrent assignments to one plan cannot together
// exceed it. A shipment that is on another plan is rejected as
// already_assigned.
type AssignShipmentToLoadCommandHandler struct {
	uowFactory LoadingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewAssignShipmentToLoadCommandHandler(
	uowFactory LoadingUoWFactory,
	audit ports.AuditService,
	clock kernel.Clock,
) AssignShipmentToLoadCommandHandler {
	return AssignShipmentToLoadCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *AssignShipmentToLoadCommandHandler) Handle(ctx context.Context, cmd AssignShipmentToLoadCommand) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LoadPlanRepository()
	plan, err := repo.GetForUpdate(ctx, cmd.LoadPlanID())
	if err != nil {
		return AssignmentResult{}, err
	}

	before := AssignmentResult{
		WeightUtilization: plan.WeightUtilization(),
		VolumeUtilization: plan.VolumeUtilization(),
	}
	rejected := func(reason loading.RejectionReason) AssignmentResult {
		result := before
		result.Reason = reason
		return result
	}

	shipmentID := cmd.Shipment().ID()
	assigned, err := repo.AssignedPlans(ctx, []kernel.UUID{shipmentID})
	if err != nil {
		return AssignmentResult{}, err
	}
	if planID, ok := assigned[shipmentID]; ok && !planID.IsEqual(plan.ID()) {
		return rejected(loading.AlreadyAssigned), nil
	}

	if cmd.IsOverride() {
		err = plan.AddWithOverride(cmd.Shipment(), cmd.Actor(), cmd.OverrideReason())
	} else {
		err = plan.Add(cmd.Shipment())
	}
	if err == nil {
		err = repo.Update(ctx, plan)
	}

	var rejection *loading.RejectionError
	if errors.As(err, &rejection) {
		return rejected(rejection.Reason), nil
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	details := map[string]any{"shipmentId": cmd.Shipment().ID().String()}
	if cmd.IsOverride() {
		details["overrideReason"] = cmd.OverrideReason()
	}
	recordAudit(ctx, h.audit, "load_plan.assign", cmd.Actor(), "load_plan", plan.ID().String(), details, h.clock.Now())

	return AssignmentResult{
		Accepted:          true,
		WeightUtilization: plan.WeightUtilization(),
		VolumeUtilization: plan.VolumeUtilization(),
	}, nil
}
