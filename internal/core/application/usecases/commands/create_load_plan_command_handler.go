package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/ports"
)

type CreateLoadPlanCommandHandler struct {
	uowFactory LoadingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewCreateLoadPlanCommandHandler(uowFactory LoadingUoWFactory, audit ports.AuditService, clock kernel.Clock) CreateLoadPlanCommandHandler {
	return CreateLoadPlanCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *CreateLoadPlanCommandHandler) Handle(ctx context.Context, cmd CreateLoadPlanCommand) (*loading.LoadPlan, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	plan, err := loading.NewLoadPlan(
		kernel.NewUUID(), cmd.WarehouseID(), cmd.VehicleID(), cmd.CapacityWeight(), cmd.CapacityVolume(), now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadPlanRepository().Add(ctx, plan); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.audit, "load_plan.create", cmd.Actor(), "load_plan", plan.ID().String(),
		map[string]any{"vehicleId": plan.VehicleID()}, now)
	return plan, nil
}
