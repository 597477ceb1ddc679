package allocation_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func validLine() allocation.Line {
	return allocation.Line{
		OrderID:     kernel.NewUUID(),
		OrderLineID: kernel.NewUUID(),
		ProductID:   kernel.NewUUID(),
		WarehouseID: kernel.NewUUID(),
	}
}

func validSource() allocation.Source {
	return allocation.Source{
		InventoryRecordID: kernel.NewUUID(),
		Location:          kernel.MustBinLocation("A", 4, 12),
		Lot:               "LOT-2025-03",
	}
}

func newAllocation(t *testing.T, qty string) *allocation.Allocation {
	t.Helper()
	a, err := allocation.NewAllocation(kernel.NewUUID(), validLine(), validSource(), kernel.MustQuantity(qty), now, now.Add(30*time.Minute))
	require.NoError(t, err)
	return a
}

func TestNewAllocation(t *testing.T) {
	t.Run("should create allocated hold", func(t *testing.T) {
		a := newAllocation(t, "10")

		require.NoError(t, a.Validate())
		assert.Equal(t, allocation.Allocated, a.Status())
		assert.True(t, a.PickedQuantity().IsZero())
		assert.Equal(t, "10.000", a.Remaining().String())
		assert.Equal(t, now.Add(30*time.Minute), a.ExpiresAt())
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		_, err := allocation.NewAllocation(kernel.UUID{}, allocation.Line{}, allocation.Source{}, kernel.ZeroQuantity(), now, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderLineId")
		assert.Contains(t, err.Error(), "inventoryRecordId")
		assert.Contains(t, err.Error(), "allocatedQuantity is invalid")
		assert.Contains(t, err.Error(), "expiresAt is invalid")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a *allocation.Allocation

		require.ErrorIs(t, a.Validate(), allocation.ErrAllocationIsNotConstructed)
	})
}

func TestAllocation_UpdatePickedQuantity(t *testing.T) {
	t.Run("partial pick", func(t *testing.T) {
		a := newAllocation(t, "10")

		applied, err := a.UpdatePickedQuantity(kernel.MustQuantity("4"))

		require.NoError(t, err)
		assert.Equal(t, "4.000", applied.String())
		assert.Equal(t, allocation.PartiallyPicked, a.Status())
	})

	t.Run("clamps to the remainder and completes", func(t *testing.T) {
		a := newAllocation(t, "10")
		_, _ = a.UpdatePickedQuantity(kernel.MustQuantity("4"))

		applied, err := a.UpdatePickedQuantity(kernel.MustQuantity("25"))

		require.NoError(t, err)
		assert.Equal(t, "6.000", applied.String())
		assert.Equal(t, allocation.Picked, a.Status())
		assert.True(t, a.PickedQuantity().Equal(a.AllocatedQuantity()))
	})

	t.Run("picked never exceeds allocated across any sequence", func(t *testing.T) {
		a := newAllocation(t, "5")
		for _, q := range []string{"1", "0", "2.5", "3", "1", "0.001"} {
			_, err := a.UpdatePickedQuantity(kernel.MustQuantity(q))
			if err != nil {
				require.ErrorIs(t, err, allocation.ErrAllocationNotAvailable)
			}
			assert.False(t, a.PickedQuantity().GreaterThan(a.AllocatedQuantity()))
		}
		assert.Equal(t, allocation.Picked, a.Status())
	})

	t.Run("rejected on expired allocation", func(t *testing.T) {
		a := newAllocation(t, "10")
		_, err := a.Expire(now.Add(time.Hour))
		require.NoError(t, err)

		_, err = a.UpdatePickedQuantity(kernel.MustQuantity("1"))

		require.ErrorIs(t, err, allocation.ErrAllocationExpired)
	})

	t.Run("rejected on cancelled allocation", func(t *testing.T) {
		a := newAllocation(t, "10")
		_, err := a.Cancel()
		require.NoError(t, err)

		_, err = a.UpdatePickedQuantity(kernel.MustQuantity("1"))

		require.ErrorIs(t, err, allocation.ErrAllocationNotAvailable)
	})
}

func TestAllocation_Expire(t *testing.T) {
	t.Run("expires an unpicked lapsed hold", func(t *testing.T) {
		a := newAllocation(t, "10")

		released, err := a.Expire(now.Add(31 * time.Minute))

		require.NoError(t, err)
		assert.Equal(t, "10.000", released.String())
		assert.Equal(t, allocation.Expired, a.Status())
	})

	t.Run("does not expire before the deadline", func(t *testing.T) {
		a := newAllocation(t, "10")

		assert.False(t, a.IsExpirable(now.Add(30*time.Minute)))
		_, err := a.Expire(now.Add(30 * time.Minute))

		require.Error(t, err)
		assert.Equal(t, allocation.Allocated, a.Status())
	})

	t.Run("does not expire a hold a picker already claimed", func(t *testing.T) {
		a := newAllocation(t, "10")
		_, _ = a.UpdatePickedQuantity(kernel.MustQuantity("1"))

		assert.False(t, a.IsExpirable(now.Add(time.Hour)))
	})
}

func TestAllocation_CancelAndRenew(t *testing.T) {
	t.Run("cancel releases the unpicked remainder", func(t *testing.T) {
		a := newAllocation(t, "10")
		_, _ = a.UpdatePickedQuantity(kernel.MustQuantity("3"))

		released, err := a.Cancel()

		require.NoError(t, err)
		assert.Equal(t, "7.000", released.String())
		assert.Equal(t, allocation.Cancelled, a.Status())
	})

	t.Run("renew extends a live hold", func(t *testing.T) {
		a := newAllocation(t, "10")

		require.NoError(t, a.Renew(time.Hour, now.Add(10*time.Minute)))

		assert.Equal(t, now.Add(70*time.Minute), a.ExpiresAt())
	})

	t.Run("renew rejects non-positive ttl and dead holds", func(t *testing.T) {
		a := newAllocation(t, "10")
		require.Error(t, a.Renew(0, now))

		_, _ = a.Cancel()
		require.ErrorIs(t, a.Renew(time.Hour, now), allocation.ErrAllocationNotAvailable)
	})
}

func TestRestoreAllocation(t *testing.T) {
	t.Run("rejects picked above allocated", func(t *testing.T) {
		_, err := allocation.RestoreAllocation(
			kernel.NewUUID(), validLine(), validSource(),
			kernel.MustQuantity("2"), kernel.MustQuantity("3"),
			allocation.PartiallyPicked, now, now.Add(time.Minute),
		)

		require.Error(t, err)
	})

	t.Run("restores a partially picked hold", func(t *testing.T) {
		a, err := allocation.RestoreAllocation(
			kernel.NewUUID(), validLine(), validSource(),
			kernel.MustQuantity("5"), kernel.MustQuantity("2"),
			allocation.PartiallyPicked, now, now.Add(time.Minute),
		)

		require.NoError(t, err)
		assert.Equal(t, "3.000", a.Remaining().String())
	})
}
