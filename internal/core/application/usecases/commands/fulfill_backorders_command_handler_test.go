package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFulfillHandler(factory commands.AllocationUoWFactory, inventory ports.InventoryService) commands.FulfillBackordersCommandHandler {
	return commands.NewFulfillBackordersCommandHandler(factory, inventory, services.NewAllocator(), nil, testClock(), defaultHoldTTL)
}

func TestFulfillBackordersCommandHandler_Handle_PartialFulfillment(t *testing.T) {
	ctx := t.Context()
	line := testLine()
	backOrder := newBackOrder(t, line, "5")
	record := testRecord(line, "3")
	cmd, err := commands.NewFulfillBackordersCommand(line.WarehouseID, 0)
	require.NoError(t, err)

	readRepo := new(MockBackOrderRepository)
	reader := new(MockUoW)
	allocations := new(MockAllocationRepository)
	backOrders := new(MockBackOrderRepository)
	uow := new(MockUoW)
	inventory := new(MockInventory)
	factory := new(MockAllocationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(reader).Once(),
		reader.On("BackOrderRepository").Return(readRepo).Once(),
		readRepo.On("FindPendingBackorders", ctx, line.WarehouseID, true).
			Return([]*allocation.BackOrder{backOrder}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		inventory.On("EligibleRecords", ctx, line.ProductID, line.WarehouseID).
			Return([]ports.InventoryRecord{record}, nil).Once(),
		inventory.On("Reserve", ctx, record.ID, qty("3")).Return(nil).Once(),
		uow.On("AllocationRepository").Return(allocations).Once(),
		allocations.On("Add", ctx, mock.Anything).Return(nil).Once(),
		uow.On("BackOrderRepository").Return(backOrders).Once(),
		backOrders.On("Update", ctx, backOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newFulfillHandler(factory, inventory)
	outcomes, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, backOrder.ID(), outcomes[0].BackOrderID)
	assert.True(t, outcomes[0].Fulfilled.Equal(kernel.MustQuantity("3")))
	assert.Len(t, outcomes[0].AllocationIDs, 1)
	assert.Equal(t, allocation.PartiallyFulfilled, outcomes[0].Status)
	assert.True(t, backOrder.Remaining().Equal(kernel.MustQuantity("2")))
	uow.AssertExpectations(t)
	backOrders.AssertExpectations(t)
}

func TestFulfillBackordersCommandHandler_Handle_AllWarehousesWithoutStock(t *testing.T) {
	ctx := t.Context()
	line := testLine()
	backOrder := newBackOrder(t, line, "5")
	cmd, err := commands.NewFulfillBackordersCommand(kernel.UUID{}, 0)
	require.NoError(t, err)

	readRepo := new(MockBackOrderRepository)
	reader := new(MockUoW)
	uow := new(MockUoW)
	inventory := new(MockInventory)
	factory := new(MockAllocationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(reader).Once(),
		reader.On("BackOrderRepository").Return(readRepo).Once(),
		readRepo.On("FindWarehousesWithPending", ctx).Return([]kernel.UUID{line.WarehouseID}, nil).Once(),
		readRepo.On("FindPendingBackorders", ctx, line.WarehouseID, true).
			Return([]*allocation.BackOrder{backOrder}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		inventory.On("EligibleRecords", ctx, line.ProductID, line.WarehouseID).
			Return([]ports.InventoryRecord{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newFulfillHandler(factory, inventory)
	outcomes, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, outcomes)
	assert.Equal(t, allocation.Pending, backOrder.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestFulfillBackordersCommandHandler_Handle_FailureOfOneWarehouseContinues(t *testing.T) {
	ctx := t.Context()
	broken := kernel.NewUUID()
	empty := kernel.NewUUID()
	cmd, err := commands.NewFulfillBackordersCommand(kernel.UUID{}, 0)
	require.NoError(t, err)

	readRepo := new(MockBackOrderRepository)
	reader := new(MockUoW)
	factory := new(MockAllocationUoWFactory)

	factory.On("Create").Return(reader).Once()
	reader.On("BackOrderRepository").Return(readRepo).Once()
	readRepo.On("FindWarehousesWithPending", ctx).Return([]kernel.UUID{broken, empty}, nil).Once()
	readRepo.On("FindPendingBackorders", ctx, broken, true).Return(nil, errors.New("timeout")).Once()
	readRepo.On("FindPendingBackorders", ctx, empty, true).Return([]*allocation.BackOrder{}, nil).Once()

	handler := newFulfillHandler(factory, new(MockInventory))
	outcomes, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorContains(t, err, "warehouse "+broken.String()+": timeout")
	assert.Empty(t, outcomes)
	readRepo.AssertExpectations(t)
}

func TestFulfillBackordersCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockAllocationUoWFactory)
	handler := newFulfillHandler(factory, new(MockInventory))

	_, err := handler.Handle(t.Context(), commands.FulfillBackordersCommand{})

	require.ErrorIs(t, err, commands.ErrFulfillBackordersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
