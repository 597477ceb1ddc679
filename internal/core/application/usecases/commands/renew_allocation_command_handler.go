package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type RenewAllocationCommandHandler struct {
	uowFactory AllocationUoWFactory
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewRenewAllocationCommandHandler(uowFactory AllocationUoWFactory, audit ports.AuditService, clock kernel.Clock) RenewAllocationCommandHandler {
	return RenewAllocationCommandHandler{uowFactory: uowFactory, audit: audit, clock: clock}
}

// Handle returns the new expiry. Expired and cancelled holds are rejected
// with allocation.ErrAllocationExpired and allocation.ErrAllocationNotAvailable.
func (h *RenewAllocationCommandHandler) Handle(ctx context.Context, cmd RenewAllocationCommand) (time.Time, error) {
	if err := cmd.Validate(); err != nil {
		return time.Time{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return time.Time{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AllocationRepository()
	hold, err := repo.GetForUpdate(ctx, cmd.AllocationID())
	if err != nil {
		return time.Time{}, err
	}

	now := h.clock.Now()
	if err = hold.Renew(cmd.TTL(), now); err != nil {
		return time.Time{}, err
	}

	if err = repo.Update(ctx, hold); err != nil {
		return time.Time{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return time.Time{}, err
	}

	recordAudit(ctx, h.audit, "allocation.renew", cmd.Actor(), "allocation", hold.ID().String(),
		map[string]any{"expiresAt": hold.ExpiresAt()}, now)
	return hold.ExpiresAt(), nil
}
