package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocationAt(t *testing.T, aisle, position int, quantity string, now time.Time) *allocation.Allocation {
	t.Helper()
	a, err := allocation.NewAllocation(
		kernel.NewUUID(),
		testLine(),
		allocation.Source{InventoryRecordID: kernel.NewUUID(), Location: kernel.MustBinLocation("B", aisle, position)},
		kernel.MustQuantity(quantity),
		now,
		now.Add(time.Hour),
	)
	require.NoError(t, err)
	return a
}

func TestPickSequencer_BuildItems(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("should order by aisle then position keeping creation order on ties", func(t *testing.T) {
		a := allocationAt(t, 3, 2, "1", now)
		b := allocationAt(t, 1, 5, "2", now)
		c := allocationAt(t, 3, 2, "3", now)
		d := allocationAt(t, 1, 1, "4", now)

		items, err := services.NewPickSequencer().BuildItems([]*allocation.Allocation{a, b, c, d})

		require.NoError(t, err)
		require.Len(t, items, 4)
		got := make([]kernel.UUID, 0, len(items))
		for _, item := range items {
			got = append(got, item.AllocationID())
		}
		assert.Equal(t, []kernel.UUID{d.ID(), b.ID(), a.ID(), c.ID()}, got)
		assert.Equal(t, "3.000", items[3].QuantityToPick().String())
	})

	t.Run("should only ask for the unpicked remainder", func(t *testing.T) {
		a := allocationAt(t, 1, 1, "5", now)
		_, err := a.UpdatePickedQuantity(kernel.MustQuantity("2"))
		require.NoError(t, err)

		items, err := services.NewPickSequencer().BuildItems([]*allocation.Allocation{a})

		require.NoError(t, err)
		assert.Equal(t, "3.000", items[0].QuantityToPick().String())
	})

	t.Run("should reject an expired allocation", func(t *testing.T) {
		a := allocationAt(t, 1, 1, "5", now)
		_, err := a.Expire(now.Add(2 * time.Hour))
		require.NoError(t, err)

		_, err = services.NewPickSequencer().BuildItems([]*allocation.Allocation{a})

		require.ErrorIs(t, err, allocation.ErrAllocationExpired)
	})

	t.Run("should build nothing from nothing", func(t *testing.T) {
		items, err := services.NewPickSequencer().BuildItems(nil)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
