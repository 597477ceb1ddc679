package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// recordAudit reports a committed change. The change already happened, so a
// failing audit sink does not fail the command; the sink logs its own errors.
func recordAudit(ctx context.Context, audit ports.AuditService, action, actor, entityType, entityID string, details map[string]any, at time.Time) {
	if audit == nil {
		return
	}
	_ = audit.Record(ctx, ports.AuditEvent{
		Action:     action,
		Actor:      actor,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		At:         at,
	})
}
