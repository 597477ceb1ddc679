package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/audit"
	"fulfillment/internal/adapters/out/inventory"
	"fulfillment/internal/pkg/logger"
	"fulfillment/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCompositionRoot_WiresHTTPServerAndJobs(t *testing.T) {
	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	log := logger.New("test", "error")
	registry := prometheus.NewRegistry()
	app, err := cmd.NewCompositionRoot(
		cfg,
		&gorm.DB{},
		cmd.Collaborators{
			Inventory: inventory.NewMemory(),
			Audit:     audit.NewLogger(log),
		},
		metrics.New(registry),
		log,
	)
	require.NoError(t, err)

	e, err := httpadapter.NewRouter(app.HTTPServer(), registry)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	manager := app.Jobs()
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestNewCompositionRoot_RejectsInvalidTolerances(t *testing.T) {
	_, err := cmd.NewCompositionRoot(
		cmd.Config{WeightTolerance: "x", DimensionTolerance: "1"},
		&gorm.DB{},
		cmd.Collaborators{},
		metrics.New(prometheus.NewRegistry()),
		logger.New("test", ""),
	)
	assert.Error(t, err)
}
