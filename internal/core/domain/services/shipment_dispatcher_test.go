package services_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPlan(t *testing.T, capacityWeight, capacityVolume string) *loading.LoadPlan {
	t.Helper()
	p, err := loading.NewLoadPlan(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"TRUCK-1",
		kernel.MustQuantity(capacityWeight),
		kernel.MustQuantity(capacityVolume),
		time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func shipment(t *testing.T, weight, volume string) loading.Shipment {
	t.Helper()
	s, err := loading.NewShipment(kernel.NewUUID(), kernel.NewUUID(), kernel.MustQuantity(weight), kernel.MustQuantity(volume))
	require.NoError(t, err)
	return s
}

func rejectionReason(t *testing.T, err error) loading.RejectionReason {
	t.Helper()
	var rejection *loading.RejectionError
	require.True(t, errors.As(err, &rejection), "expected a rejection, got %v", err)
	return rejection.Reason
}

func TestShipmentDispatcher_Dispatch(t *testing.T) {
	t.Run("should dispatch to the plan with the least weight left after placement", func(t *testing.T) {
		roomy := loadPlan(t, "1000", "50")
		tight := loadPlan(t, "300", "50")
		s := shipment(t, "250", "5")

		result, err := services.NewShipmentDispatcher().Dispatch(s, []*loading.LoadPlan{roomy, tight})

		require.NoError(t, err)
		assert.Same(t, tight, result)
		assert.True(t, tight.Contains(s.ID()))
		assert.False(t, roomy.Contains(s.ID()))
	})

	t.Run("should keep the first plan on ties", func(t *testing.T) {
		first := loadPlan(t, "500", "50")
		second := loadPlan(t, "500", "50")

		result, err := services.NewShipmentDispatcher().Dispatch(shipment(t, "100", "1"), []*loading.LoadPlan{first, second})

		require.NoError(t, err)
		assert.Same(t, first, result)
	})

	t.Run("should skip plans without room", func(t *testing.T) {
		full := loadPlan(t, "100", "50")
		require.NoError(t, full.Add(shipment(t, "90", "1")))
		open := loadPlan(t, "1000", "50")

		result, err := services.NewShipmentDispatcher().Dispatch(shipment(t, "20", "1"), []*loading.LoadPlan{full, open})

		require.NoError(t, err)
		assert.Same(t, open, result)
	})

	t.Run("should report weight before volume", func(t *testing.T) {
		light := loadPlan(t, "1000", "1")
		small := loadPlan(t, "10", "100")

		_, err := services.NewShipmentDispatcher().Dispatch(shipment(t, "20", "5"), []*loading.LoadPlan{light, small})

		assert.Equal(t, loading.WeightCapacityExceeded, rejectionReason(t, err))
		require.ErrorIs(t, err, loading.ErrCapacityExceeded)
	})

	t.Run("should report volume when only volume is short", func(t *testing.T) {
		_, err := services.NewShipmentDispatcher().Dispatch(shipment(t, "20", "5"), []*loading.LoadPlan{loadPlan(t, "1000", "1")})

		assert.Equal(t, loading.VolumeCapacityExceeded, rejectionReason(t, err))
	})

	t.Run("should report plan_not_open without open plans", func(t *testing.T) {
		loaded := loadPlan(t, "1000", "100")
		require.NoError(t, loaded.ChangeStatus(loading.Loading))
		require.NoError(t, loaded.ChangeStatus(loading.Loaded))

		_, err := services.NewShipmentDispatcher().Dispatch(shipment(t, "1", "1"), []*loading.LoadPlan{loaded})
		assert.Equal(t, loading.PlanNotOpen, rejectionReason(t, err))

		_, err = services.NewShipmentDispatcher().Dispatch(shipment(t, "1", "1"), nil)
		assert.Equal(t, loading.PlanNotOpen, rejectionReason(t, err))
	})

	t.Run("should report a shipment that is already on a plan", func(t *testing.T) {
		p := loadPlan(t, "1000", "100")
		s := shipment(t, "1", "1")
		require.NoError(t, p.Add(s))

		_, err := services.NewShipmentDispatcher().Dispatch(s, []*loading.LoadPlan{loadPlan(t, "0.5", "0.5"), p})

		assert.Equal(t, loading.AlreadyAssigned, rejectionReason(t, err))
	})

	t.Run("should not place a shipment on a second plan that has room", func(t *testing.T) {
		holding := loadPlan(t, "1000", "100")
		roomy := loadPlan(t, "1000", "100")
		s := shipment(t, "1", "1")
		require.NoError(t, holding.Add(s))

		_, err := services.NewShipmentDispatcher().Dispatch(s, []*loading.LoadPlan{roomy, holding})

		assert.Equal(t, loading.AlreadyAssigned, rejectionReason(t, err))
		assert.False(t, roomy.Contains(s.ID()))
		assert.Len(t, holding.Shipments(), 1)
	})

	t.Run("should return error when a plan is not constructed", func(t *testing.T) {
		_, err := services.NewShipmentDispatcher().Dispatch(shipment(t, "1", "1"), []*loading.LoadPlan{{}})

		require.ErrorIs(t, err, loading.ErrLoadPlanIsNotConstructed)
	})
}

func TestLoadPlanner_Plan(t *testing.T) {
	a := loadPlan(t, "500", "20")
	b := loadPlan(t, "800", "20")

	s1 := shipment(t, "400", "5")
	s2 := shipment(t, "300", "5")
	s3 := shipment(t, "550", "5")
	s4 := shipment(t, "900", "5")

	result, err := services.NewLoadPlanner().Plan([]loading.Shipment{s1, s2, s3, s4}, []*loading.LoadPlan{a, b})

	require.NoError(t, err)
	require.Len(t, result.Placements, 2)
	assert.Same(t, a, result.Placements[0].Plan)
	assert.Same(t, b, result.Placements[1].Plan)

	require.Len(t, result.Unplaced, 2)
	assert.Equal(t, s3.ID(), result.Unplaced[0].Shipment.ID())
	assert.Equal(t, loading.WeightCapacityExceeded, result.Unplaced[0].Reason)
	assert.Equal(t, s4.ID(), result.Unplaced[1].Shipment.ID())

	assert.False(t, a.IsOverweight())
	assert.False(t, b.IsOverweight())
	assert.Equal(t, "80.00", a.WeightUtilization().StringFixed(2))
}

func TestLoadPlanner_Plan_ShipmentAlreadyOnAPlan(t *testing.T) {
	a := loadPlan(t, "500", "20")
	b := loadPlan(t, "500", "20")
	s := shipment(t, "100", "5")
	require.NoError(t, a.Add(s))

	result, err := services.NewLoadPlanner().Plan([]loading.Shipment{s}, []*loading.LoadPlan{a, b})

	require.NoError(t, err)
	assert.Empty(t, result.Placements)
	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, loading.AlreadyAssigned, result.Unplaced[0].Reason)
	assert.True(t, a.Contains(s.ID()))
	assert.False(t, b.Contains(s.ID()))
}

func TestLoadPlanner_Plan_DuplicateInOneRun(t *testing.T) {
	a := loadPlan(t, "500", "20")
	b := loadPlan(t, "500", "20")
	s := shipment(t, "100", "5")

	result, err := services.NewLoadPlanner().Plan([]loading.Shipment{s, s}, []*loading.LoadPlan{a, b})

	require.NoError(t, err)
	require.Len(t, result.Placements, 1)
	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, loading.AlreadyAssigned, result.Unplaced[0].Reason)
	assert.Len(t, a.Shipments(), 1)
	assert.Empty(t, b.Shipments())
}
