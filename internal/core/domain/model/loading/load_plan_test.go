package loading_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)

func newPlan(t *testing.T, weight, volume string) *loading.LoadPlan {
	t.Helper()
	p, err := loading.NewLoadPlan(kernel.NewUUID(), kernel.NewUUID(), "TRK-042", kernel.MustQuantity(weight), kernel.MustQuantity(volume), now)
	require.NoError(t, err)
	return p
}

func newShipment(t *testing.T, weight, volume string) loading.Shipment {
	t.Helper()
	s, err := loading.NewShipment(kernel.NewUUID(), kernel.NewUUID(), kernel.MustQuantity(weight), kernel.MustQuantity(volume))
	require.NoError(t, err)
	return s
}

func TestLoadPlan_Add(t *testing.T) {
	t.Run("accepts while capacity holds and recomputes utilization", func(t *testing.T) {
		p := newPlan(t, "1000", "40")

		require.NoError(t, p.Add(newShipment(t, "400", "10")))
		require.NoError(t, p.Add(newShipment(t, "350", "20")))

		assert.Equal(t, "750.000", p.TotalWeight().String())
		assert.True(t, p.WeightUtilization().Equal(decimal.NewFromInt(75)))
		assert.True(t, p.VolumeUtilization().Equal(decimal.NewFromInt(75)))
		assert.Equal(t, "250.000", p.RemainingWeight().String())
	})

	t.Run("exactly full is accepted", func(t *testing.T) {
		p := newPlan(t, "100", "10")

		require.NoError(t, p.Add(newShipment(t, "100", "10")))
		assert.False(t, p.IsOverweight())
	})

	t.Run("rejects weight overflow with reason", func(t *testing.T) {
		p := newPlan(t, "100", "10")
		require.NoError(t, p.Add(newShipment(t, "80", "1")))

		err := p.Add(newShipment(t, "30", "1"))

		var rejection *loading.RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, loading.WeightCapacityExceeded, rejection.Reason)
		require.ErrorIs(t, err, loading.ErrCapacityExceeded)
		assert.Len(t, p.Shipments(), 1)
	})

	t.Run("rejects volume overflow", func(t *testing.T) {
		p := newPlan(t, "100", "10")

		err := p.Add(newShipment(t, "1", "11"))

		assert.Equal(t, loading.VolumeCapacityExceeded, p.Evaluate(newShipment(t, "1", "11")))
		require.ErrorIs(t, err, loading.ErrCapacityExceeded)
	})

	t.Run("rejects duplicates and closed plans", func(t *testing.T) {
		p := newPlan(t, "100", "10")
		s := newShipment(t, "1", "1")
		require.NoError(t, p.Add(s))

		require.ErrorIs(t, p.Add(s), loading.ErrAlreadyAssigned)

		require.NoError(t, p.ChangeStatus(loading.Loading))
		require.NoError(t, p.ChangeStatus(loading.Loaded))
		require.ErrorIs(t, p.Add(newShipment(t, "1", "1")), loading.ErrPlanNotOpen)
	})

	t.Run("never exceeds capacity across any sequence", func(t *testing.T) {
		p := newPlan(t, "100", "10")
		weights := []string{"30", "50", "25", "10", "5", "1", "40"}
		for _, w := range weights {
			_ = p.Add(newShipment(t, w, "1"))
			assert.False(t, p.IsOverweight())
			assert.False(t, p.IsOverVolume())
		}
		assert.Equal(t, "96.000", p.TotalWeight().String())
	})
}

func TestLoadPlan_AddWithOverride(t *testing.T) {
	p := newPlan(t, "100", "10")
	require.NoError(t, p.Add(newShipment(t, "90", "5")))

	require.Error(t, p.AddWithOverride(newShipment(t, "20", "1"), "", "urgent"))
	require.NoError(t, p.AddWithOverride(newShipment(t, "20", "1"), "yard-lead", "urgent trailer"))

	assert.True(t, p.IsOverweight())
	assert.False(t, p.IsOverVolume())
	assert.True(t, p.WeightUtilization().Equal(decimal.NewFromInt(110)))
	assert.True(t, p.RemainingWeight().IsZero())
}

func TestLoadPlan_Remove(t *testing.T) {
	p := newPlan(t, "100", "10")
	s := newShipment(t, "10", "1")
	require.NoError(t, p.Add(s))

	require.NoError(t, p.Remove(s.ID()))
	require.ErrorIs(t, p.Remove(s.ID()), loading.ErrShipmentNotAssigned)
	assert.True(t, p.TotalWeight().IsZero())
}

func TestLoadPlanStatus_TransitionTo(t *testing.T) {
	p := newPlan(t, "100", "10")

	require.Error(t, p.ChangeStatus(loading.Loaded))
	for _, s := range []loading.LoadPlanStatus{loading.Loading, loading.Loaded, loading.Dispatched, loading.Delivered} {
		require.NoError(t, p.ChangeStatus(s))
	}
	require.Error(t, p.ChangeStatus(loading.Delivered))
}
