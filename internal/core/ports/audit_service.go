package ports

import (
	"context"
	"time"
)

// AuditEvent describes one state-changing call.
type AuditEvent struct {
	Action     string
	Actor      string
	EntityType string
	EntityID   string
	Details    map[string]any
	At         time.Time
}

// AuditService records who changed what. Every mutating command reports
// through it after its transaction committed.
type AuditService interface {
	Record(ctx context.Context, event AuditEvent) error
}
