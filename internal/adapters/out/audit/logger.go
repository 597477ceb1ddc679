// Package audit writes the audit trail of mutating calls as structured log
// records.
package audit

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

var _ ports.AuditService = (*Logger)(nil)

type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger.With("component", "audit")}
}

func (l *Logger) Record(ctx context.Context, event ports.AuditEvent) error {
	attrs := []slog.Attr{
		slog.String("action", event.Action),
		slog.String("actor", event.Actor),
		slog.String("entityType", event.EntityType),
		slog.String("entityId", event.EntityID),
		slog.Time("at", event.At),
	}
	if len(event.Details) > 0 {
		attrs = append(attrs, slog.Any("details", event.Details))
	}
	l.logger.LogAttrs(ctx, slog.LevelInfo, "audit", attrs...)
	return nil
}
