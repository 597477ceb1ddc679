package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"fulfillment/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_DevLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "dev", "")

	log.Debug("sweep", "released", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "sweep", entry["msg"])
	assert.InDelta(t, 3, entry["released"], 0)
}

func TestNewWithWriter_ProdSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "prod", "")

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_LevelOverridesEnvironment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "dev", "warn")

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
