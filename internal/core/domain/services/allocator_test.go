package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) EligibleRecords(ctx context.Context, productID, warehouseID kernel.UUID) ([]ports.InventoryRecord, error) {
	args := m.Called(ctx, productID, warehouseID)
	var records []ports.InventoryRecord
	if v := args.Get(0); v != nil {
		records = v.([]ports.InventoryRecord)
	}
	return records, args.Error(1)
}

func (m *MockInventory) Reserve(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	return m.Called(ctx, recordID, quantity).Error(0)
}

func (m *MockInventory) Release(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	return m.Called(ctx, recordID, quantity).Error(0)
}

func (m *MockInventory) Commit(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	return m.Called(ctx, recordID, quantity).Error(0)
}

func qty(s string) any {
	want := kernel.MustQuantity(s)
	return mock.MatchedBy(func(q kernel.Quantity) bool { return q.Equal(want) })
}

func testLine() allocation.Line {
	return allocation.Line{
		OrderID:     kernel.NewUUID(),
		OrderLineID: kernel.NewUUID(),
		ProductID:   kernel.NewUUID(),
		WarehouseID: kernel.NewUUID(),
	}
}

func record(line allocation.Line, aisle int, available string) ports.InventoryRecord {
	return ports.InventoryRecord{
		ID:          kernel.NewUUID(),
		ProductID:   line.ProductID,
		WarehouseID: line.WarehouseID,
		Location:    kernel.MustBinLocation("A", aisle, 1),
		Available:   kernel.MustQuantity(available),
	}
}

func TestAllocator_Allocate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	t.Run("should reserve across records in rotation order", func(t *testing.T) {
		ctx := t.Context()
		line := testLine()
		r1, r2 := record(line, 1, "3"), record(line, 2, "5")

		inventory := &MockInventory{}
		inventory.On("EligibleRecords", ctx, line.ProductID, line.WarehouseID).Return([]ports.InventoryRecord{r1, r2}, nil).Once()
		inventory.On("Reserve", ctx, r1.ID, qty("3")).Return(nil).Once()
		inventory.On("Reserve", ctx, r2.ID, qty("3")).Return(nil).Once()

		result, err := services.NewAllocator().Allocate(ctx, inventory, services.AllocationRequest{
			Line:     line,
			Quantity: kernel.MustQuantity("6"),
			TTL:      ttl,
		}, nil, now)

		require.NoError(t, err)
		require.Len(t, result.Allocations, 2)
		assert.Equal(t, r1.ID, result.Allocations[0].Source().InventoryRecordID)
		assert.Equal(t, "3.000", result.Allocations[1].AllocatedQuantity().String())
		assert.Equal(t, now.Add(ttl), result.Allocations[0].ExpiresAt())
		assert.Equal(t, "6.000", result.Allocated.String())
		assert.True(t, result.Shortfall.IsZero())
		assert.Nil(t, result.BackOrder)
		inventory.AssertExpectations(t)
	})

	t.Run("should skip a record lost to a concurrent reservation and backorder the rest", func(t *testing.T) {
		ctx := t.Context()
		line := testLine()
		r1, r2 := record(line, 1, "4"), record(line, 2, "5")

		inventory := &MockInventory{}
		inventory.On("EligibleRecords", ctx, line.ProductID, line.WarehouseID).Return([]ports.InventoryRecord{r1, r2}, nil).Once()
		inventory.On("Reserve", ctx, r1.ID, qty("4")).Return(allocation.ErrInsufficientInventory).Once()
		inventory.On("Reserve", ctx, r2.ID, qty("5")).Return(nil).Once()

		result, err := services.NewAllocator().Allocate(ctx, inventory, services.AllocationRequest{
			Line:        line,
			Quantity:    kernel.MustQuantity("7"),
			TTL:         ttl,
			AutoFulfill: true,
		}, nil, now)

		require.NoError(t, err)
		require.Len(t, result.Allocations, 1)
		assert.Equal(t, r2.ID, result.Allocations[0].Source().InventoryRecordID)
		assert.Equal(t, "2.000", result.Shortfall.String())
		require.NotNil(t, result.BackOrder)
		assert.True(t, result.BackOrderCreated)
		assert.Equal(t, "2.000", result.BackOrder.BackorderedQuantity().String())
		assert.True(t, result.BackOrder.AutoFulfill())
		assert.Equal(t, allocation.Pending, result.BackOrder.Status())
		inventory.AssertExpectations(t)
	})

	t.Run("should grow the open backorder of the line", func(t *testing.T) {
		ctx := t.Context()
		line := testLine()
		open, err := allocation.NewBackOrder(kernel.NewUUID(), line, kernel.MustQuantity("1"), nil, true, now)
		require.NoError(t, err)

		inventory := &MockInventory{}
		inventory.On("EligibleRecords", ctx, line.ProductID, line.WarehouseID).Return(nil, nil).Once()

		result, err := services.NewAllocator().Allocate(ctx, inventory, services.AllocationRequest{
			Line:     line,
			Quantity: kernel.MustQuantity("2"),
			TTL:      ttl,
		}, open, now)

		require.NoError(t, err)
		assert.Empty(t, result.Allocations)
		assert.Same(t, open, result.BackOrder)
		assert.False(t, result.BackOrderCreated)
		assert.Equal(t, "3.000", open.BackorderedQuantity().String())
	})

	t.Run("should release this attempt on infrastructure failure", func(t *testing.T) {
		ctx := t.Context()
		line := testLine()
		r1, r2 := record(line, 1, "2"), record(line, 2, "2")
		down := errors.New("connection refused")

		inventory := &MockInventory{}
		inventory.On("EligibleRecords", ctx, line.ProductID, line.WarehouseID).Return([]ports.InventoryRecord{r1, r2}, nil).Once()
		inventory.On("Reserve", ctx, r1.ID, qty("2")).Return(nil).Once()
		inventory.On("Reserve", ctx, r2.ID, qty("2")).Return(down).Once()
		inventory.On("Release", mock.Anything, r1.ID, qty("2")).Return(nil).Once()

		result, err := services.NewAllocator().Allocate(ctx, inventory, services.AllocationRequest{
			Line:     line,
			Quantity: kernel.MustQuantity("4"),
			TTL:      ttl,
		}, nil, now)

		require.Error(t, err)
		assert.True(t, errs.IsRetryable(err))
		require.ErrorIs(t, err, down)
		assert.Empty(t, result.Allocations)
		inventory.AssertExpectations(t)
	})

	t.Run("should surface a failed record lookup as retryable", func(t *testing.T) {
		ctx := t.Context()
		line := testLine()

		inventory := &MockInventory{}
		inventory.On("EligibleRecords", ctx, line.ProductID, line.WarehouseID).Return(nil, context.DeadlineExceeded).Once()

		_, err := services.NewAllocator().Allocate(ctx, inventory, services.AllocationRequest{
			Line:     line,
			Quantity: kernel.MustQuantity("1"),
			TTL:      ttl,
		}, nil, now)

		require.ErrorIs(t, err, errs.ErrRetryable)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		inventory.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject a request without quantity", func(t *testing.T) {
		inventory := &MockInventory{}

		_, err := services.NewAllocator().Allocate(t.Context(), inventory, services.AllocationRequest{
			Line: testLine(),
			TTL:  ttl,
		}, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		inventory.AssertNotCalled(t, "EligibleRecords", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAllocator_Reserve_DoesNotBackorder(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	line := testLine()
	r1 := record(line, 4, "1.5")

	inventory := &MockInventory{}
	inventory.On("EligibleRecords", ctx, line.ProductID, line.WarehouseID).Return([]ports.InventoryRecord{r1}, nil).Once()
	inventory.On("Reserve", ctx, r1.ID, qty("1.5")).Return(nil).Once()

	allocations, shortfall, err := services.NewAllocator().Reserve(ctx, inventory, line, kernel.MustQuantity("4"), time.Hour, now)

	require.NoError(t, err)
	require.Len(t, allocations, 1)
	assert.Equal(t, "2.500", shortfall.String())
}
