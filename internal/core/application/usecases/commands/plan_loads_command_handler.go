package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// PlanLoadsCommandHandler runs the greedy planner over every open plan of the
// warehouse. All open plans are locked for the run, so the capacities the
// planner sees cannot change under it.
type PlanLoadsCommandHandler struct {
	uowFactory LoadingUoWFactory
	planner    services.LoadPlanner
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewPlanLoadsCommandHandler(
	uowFactory LoadingUoWFactory,
	planner services.LoadPlanner,
	audit ports.AuditService,
	clock kernel.Clock,
) PlanLoadsCommandHandler {
	return PlanLoadsCommandHandler{uowFactory: uowFactory, planner: planner, audit: audit, clock: clock}
}

func (h *PlanLoadsCommandHandler) Handle(ctx context.Context, cmd PlanLoadsCommand) (services.PlanningResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.PlanningResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.PlanningResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LoadPlanRepository()
	plans, err := repo.FindOpenForUpdate(ctx, cmd.WarehouseID())
	if err != nil {
		return services.PlanningResult{}, err
	}

	shipments, elsewhere, err := h.unassigned(ctx, repo, cmd.Shipments())
	if err != nil {
		return services.PlanningResult{}, err
	}

	result, err := h.planner.Plan(shipments, plans)
	if err != nil {
		return services.PlanningResult{}, err
	}
	result.Unplaced = append(elsewhere, result.Unplaced...)

	touched := make(map[kernel.UUID]*loading.LoadPlan, len(plans))
	for _, placement := range result.Placements {
		touched[placement.Plan.ID()] = placement.Plan
	}
	// Plans are updated in the order they were locked.
	for _, plan := range plans {
		if _, ok := touched[plan.ID()]; !ok {
			continue
		}
		// A rejection here means a concurrent writer assigned one of the
		// shipments after the check above; the whole run is rolled back.
		if err = repo.Update(ctx, plan); err != nil {
			return services.PlanningResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.PlanningResult{}, err
	}

	now := h.clock.Now()
	for _, placement := range result.Placements {
		recordAudit(ctx, h.audit, "load_plan.assign", cmd.Actor(), "load_plan", placement.Plan.ID().String(),
			map[string]any{"shipmentId": placement.Shipment.ID().String()}, now)
	}
	return result, nil
}

// unassigned splits shipments into those on no plan and those already stored
// on one, which are reported as already_assigned.
func (h *PlanLoadsCommandHandler) unassigned(
	ctx context.Context,
	repo ports.LoadPlanRepository,
	shipments []loading.Shipment,
) ([]loading.Shipment, []services.Unplaced, error) {
	ids := make([]kernel.UUID, 0, len(shipments))
	for _, s := range shipments {
		ids = append(ids, s.ID())
	}
	assigned, err := repo.AssignedPlans(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	free := make([]loading.Shipment, 0, len(shipments))
	elsewhere := make([]services.Unplaced, 0)
	for _, s := range shipments {
		if _, ok := assigned[s.ID()]; ok {
			elsewhere = append(elsewhere, services.Unplaced{Shipment: s, Reason: loading.AlreadyAssigned})
			continue
		}
		free = append(free, s)
	}
	return free, elsewhere, nil
}
