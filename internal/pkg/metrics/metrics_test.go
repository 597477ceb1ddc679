package metrics_test

import (
	"testing"

	"fulfillment/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectorsOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Allocations.Inc()
	m.Picks.WithLabelValues("short").Add(2)
	m.LoadRejections.WithLabelValues("weight_capacity_exceeded").Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(m.Allocations), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.Picks.WithLabelValues("short")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fulfillment_allocations_created_total")
	assert.Contains(t, names, "fulfillment_picks_total")
	assert.Contains(t, names, "fulfillment_load_assignment_rejections_total")
}

func TestNew_TwoRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}
