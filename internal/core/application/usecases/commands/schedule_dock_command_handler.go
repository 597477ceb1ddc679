package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/ports"
)

// ScheduleResult is the answer to a dock request. When the window overlaps an
// active schedule at the same dock, Scheduled is false and ConflictingID names
// the schedule in the way.
type ScheduleResult struct {
	Scheduled     bool
	Schedule      *loading.DockSchedule
	ConflictingID kernel.UUID
}

// ScheduleDockCommandHandler serializes scheduling per dock: the dock lock is
// taken before the existing schedules are read and held until commit, so two
// overlapping requests cannot both pass the conflict check.
type ScheduleDockCommandHandler struct {
	uowFactory LoadingUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewScheduleDockCommandHandler(uowFactory LoadingUoWFactory, audit ports.AuditService, clock kernel.Clock) ScheduleDockCommandHandler {
	return ScheduleDockCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

func (h *ScheduleDockCommandHandler) Handle(ctx context.Context, cmd ScheduleDockCommand) (ScheduleResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScheduleResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ScheduleResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.LoadPlanRepository().Get(ctx, cmd.LoadPlanID()); err != nil {
		return ScheduleResult{}, err
	}

	schedules := uow.DockScheduleRepository()
	if err := schedules.LockDock(ctx, cmd.DockID()); err != nil {
		return ScheduleResult{}, err
	}

	now := h.clock.Now()
	candidate, err := loading.NewDockSchedule(
		kernel.NewUUID(), cmd.DockID(), cmd.LoadPlanID(), cmd.Window(), cmd.ScheduledBy(), cmd.Notes(), now)
	if err != nil {
		return ScheduleResult{}, err
	}

	active, err := schedules.FindActiveByDock(ctx, cmd.DockID())
	if err != nil {
		return ScheduleResult{}, err
	}
	for _, existing := range active {
		if candidate.ConflictsWith(existing) {
			return ScheduleResult{ConflictingID: existing.ID()}, nil
		}
	}

	if err = schedules.Add(ctx, candidate); err != nil {
		return ScheduleResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ScheduleResult{}, err
	}

	recordAudit(ctx, h.audit, "dock.schedule", cmd.ScheduledBy(), "dock_schedule", candidate.ID().String(),
		map[string]any{
			"dockId":     cmd.DockID().String(),
			"loadPlanId": cmd.LoadPlanID().String(),
			"window":     cmd.Window().String(),
		}, now)
	return ScheduleResult{Scheduled: true, Schedule: candidate}, nil
}
