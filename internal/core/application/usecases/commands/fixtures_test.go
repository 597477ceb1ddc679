package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func testLine() allocation.Line {
	return allocation.Line{
		OrderID:     kernel.NewUUID(),
		OrderLineID: kernel.NewUUID(),
		ProductID:   kernel.NewUUID(),
		WarehouseID: kernel.NewUUID(),
	}
}

func testRecord(line allocation.Line, available string) ports.InventoryRecord {
	return ports.InventoryRecord{
		ID:          kernel.NewUUID(),
		ProductID:   line.ProductID,
		WarehouseID: line.WarehouseID,
		Location:    kernel.MustBinLocation("A", 1, 1),
		Available:   kernel.MustQuantity(available),
	}
}

func newHold(t *testing.T, line allocation.Line, quantity string, expiresAt time.Time) *allocation.Allocation {
	t.Helper()
	hold, err := allocation.NewAllocation(
		kernel.NewUUID(),
		line,
		allocation.Source{InventoryRecordID: kernel.NewUUID(), Location: kernel.MustBinLocation("A", 1, 1)},
		kernel.MustQuantity(quantity),
		expiresAt.Add(-15*time.Minute),
		expiresAt,
	)
	require.NoError(t, err)
	return hold
}

func newBackOrder(t *testing.T, line allocation.Line, quantity string) *allocation.BackOrder {
	t.Helper()
	backOrder, err := allocation.NewBackOrder(kernel.NewUUID(), line, kernel.MustQuantity(quantity), nil, true, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return backOrder
}
