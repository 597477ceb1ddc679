package audit_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/audit"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Record(t *testing.T) {
	var buf bytes.Buffer
	logger := audit.NewLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := logger.Record(t.Context(), ports.AuditEvent{
		Action:     "pick.confirm",
		Actor:      "picker-7",
		EntityType: "pick_list",
		EntityID:   "list-1",
		Details:    map[string]any{"quantity": "5"},
		At:         time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "audit", line["msg"])
	assert.Equal(t, "audit", line["component"])
	assert.Equal(t, "pick.confirm", line["action"])
	assert.Equal(t, "picker-7", line["actor"])
	assert.Equal(t, "list-1", line["entityId"])
	assert.Equal(t, map[string]any{"quantity": "5"}, line["details"])
}

func TestLogger_Record_WithoutDetails(t *testing.T) {
	var buf bytes.Buffer
	logger := audit.NewLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, logger.Record(t.Context(), ports.AuditEvent{Action: "load.status", Actor: "system"}))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.NotContains(t, line, "details")
}
