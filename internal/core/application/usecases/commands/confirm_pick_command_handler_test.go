package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPickList(t *testing.T, holds ...*allocation.Allocation) *picking.PickList {
	t.Helper()
	items, err := services.NewPickSequencer().BuildItems(holds)
	require.NoError(t, err)
	list, err := picking.NewPickList(kernel.NewUUID(), holds[0].Line().WarehouseID, kernel.UUID{}, "picker-7", items, testNow)
	require.NoError(t, err)
	return list
}

func pickRequest(item *picking.Item, quantity string) picking.PickRequest {
	return picking.PickRequest{
		ConfirmationID: "scan-" + item.ID().String(),
		ItemID:         item.ID(),
		Quantity:       kernel.MustQuantity(quantity),
		PickerID:       "picker-7",
		Method:         picking.Scan,
	}
}

func TestConfirmPickCommandHandler_Handle_FullPick(t *testing.T) {
	ctx := t.Context()
	hold := holdAt(t, testLine(), "4", 1, 1)
	list := newPickList(t, hold)
	cmd, err := commands.NewConfirmPickCommand(list.ID(), pickRequest(list.Items()[0], "4"))
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	allocations := new(MockAllocationRepository)
	inventory := new(MockInventory)
	audit := new(MockAudit)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickListRepository").Return(lists).Once(),
		lists.On("GetForUpdate", ctx, list.ID()).Return(list, nil).Once(),
		uow.On("AllocationRepository").Return(allocations).Once(),
		allocations.On("GetForUpdate", ctx, hold.ID()).Return(hold, nil).Once(),
		allocations.On("Update", ctx, hold).Return(nil).Once(),
		lists.On("Update", ctx, list).Return(nil).Once(),
		inventory.On("Commit", ctx, hold.Source().InventoryRecordID, qty("4")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		audit.On("Record", ctx, mock.MatchedBy(func(e ports.AuditEvent) bool {
			return e.Action == "pick.confirm" && e.Actor == "picker-7"
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmPickCommandHandler(factory, inventory, audit, testClock())
	outcome, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, picking.ItemPicked, outcome.ItemStatus)
	assert.True(t, outcome.ListCompleted)
	assert.False(t, outcome.Replayed)
	assert.Equal(t, allocation.Picked, hold.Status())
	assert.Equal(t, picking.ListCompleted, list.Status())
	uow.AssertExpectations(t)
	inventory.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestConfirmPickCommandHandler_Handle_ShortPickOpensException(t *testing.T) {
	ctx := t.Context()
	hold := holdAt(t, testLine(), "4", 1, 1)
	list := newPickList(t, hold)
	cmd, err := commands.NewConfirmPickCommand(list.ID(), pickRequest(list.Items()[0], "3"))
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	allocations := new(MockAllocationRepository)
	inventory := new(MockInventory)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickListRepository").Return(lists).Once(),
		lists.On("GetForUpdate", ctx, list.ID()).Return(list, nil).Once(),
		uow.On("AllocationRepository").Return(allocations).Once(),
		allocations.On("GetForUpdate", ctx, hold.ID()).Return(hold, nil).Once(),
		allocations.On("Update", ctx, hold).Return(nil).Once(),
		lists.On("Update", ctx, list).Return(nil).Once(),
		inventory.On("Commit", ctx, hold.Source().InventoryRecordID, qty("3")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmPickCommandHandler(factory, inventory, nil, testClock())
	outcome, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, picking.ItemShortPicked, outcome.ItemStatus)
	require.NotNil(t, outcome.Exception)
	assert.Equal(t, picking.ShortPick, outcome.Exception.Type())
	assert.True(t, outcome.Exception.ExpectedQuantity().Equal(kernel.MustQuantity("4")))
	assert.True(t, outcome.Exception.ActualQuantity().Equal(kernel.MustQuantity("3")))
	assert.Equal(t, allocation.PartiallyPicked, hold.Status())
	assert.True(t, hold.PickedQuantity().Equal(kernel.MustQuantity("3")))
}

func TestConfirmPickCommandHandler_Handle_InventoryCommitFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	hold := holdAt(t, testLine(), "4", 1, 1)
	list := newPickList(t, hold)
	cmd, err := commands.NewConfirmPickCommand(list.ID(), pickRequest(list.Items()[0], "4"))
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	allocations := new(MockAllocationRepository)
	inventory := new(MockInventory)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PickListRepository").Return(lists).Once()
	lists.On("GetForUpdate", ctx, list.ID()).Return(list, nil).Once()
	uow.On("AllocationRepository").Return(allocations).Once()
	allocations.On("GetForUpdate", ctx, hold.ID()).Return(hold, nil).Once()
	allocations.On("Update", ctx, hold).Return(nil).Once()
	lists.On("Update", ctx, list).Return(nil).Once()
	inventory.On("Commit", ctx, hold.Source().InventoryRecordID, qty("4")).Return(errors.New("503")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewConfirmPickCommandHandler(factory, inventory, nil, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errs.IsRetryable(err))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmPickCommandHandler_Handle_HoldExpiredBySweep(t *testing.T) {
	ctx := t.Context()
	hold := holdAt(t, testLine(), "4", 1, 1)
	list := newPickList(t, hold)
	cmd, err := commands.NewConfirmPickCommand(list.ID(), pickRequest(list.Items()[0], "4"))
	require.NoError(t, err)

	// The locked read returns the row as the sweep left it.
	expired := newHold(t, testLine(), "4", testNow.Add(-time.Minute))
	_, err = expired.Expire(testNow)
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	allocations := new(MockAllocationRepository)
	inventory := new(MockInventory)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PickListRepository").Return(lists).Once()
	lists.On("GetForUpdate", ctx, list.ID()).Return(list, nil).Once()
	uow.On("AllocationRepository").Return(allocations).Once()
	allocations.On("GetForUpdate", ctx, hold.ID()).Return(expired, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewConfirmPickCommandHandler(factory, inventory, nil, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, allocation.ErrAllocationExpired)
	allocations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	lists.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	inventory.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmPickCommandHandler_Handle_StaleAllocationWriteRejected(t *testing.T) {
	ctx := t.Context()
	hold := holdAt(t, testLine(), "4", 1, 1)
	list := newPickList(t, hold)
	cmd, err := commands.NewConfirmPickCommand(list.ID(), pickRequest(list.Items()[0], "2"))
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	allocations := new(MockAllocationRepository)
	inventory := new(MockInventory)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PickListRepository").Return(lists).Once()
	lists.On("GetForUpdate", ctx, list.ID()).Return(list, nil).Once()
	uow.On("AllocationRepository").Return(allocations).Once()
	allocations.On("GetForUpdate", ctx, hold.ID()).Return(hold, nil).Once()
	allocations.On("Update", ctx, hold).Return(allocation.ErrAllocationNotAvailable).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewConfirmPickCommandHandler(factory, inventory, nil, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, allocation.ErrAllocationNotAvailable)
	inventory.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmPickCommandHandler_Handle_ReplayWritesNothing(t *testing.T) {
	ctx := t.Context()
	hold := holdAt(t, testLine(), "4", 1, 1)
	list := newPickList(t, hold)
	req := pickRequest(list.Items()[0], "4")
	_, err := list.Pick(req, testNow)
	require.NoError(t, err)
	cmd, err := commands.NewConfirmPickCommand(list.ID(), req)
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickListRepository").Return(lists).Once(),
		lists.On("GetForUpdate", ctx, list.ID()).Return(list, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmPickCommandHandler(factory, nil, nil, testClock())
	outcome, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, outcome.Replayed)
	assert.True(t, outcome.PickedQty.Equal(kernel.MustQuantity("4")))
	assert.Len(t, list.Confirmations(), 1)
	lists.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "AllocationRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmPickCommandHandler_Handle_ItemAlreadyPicked(t *testing.T) {
	ctx := t.Context()
	hold := holdAt(t, testLine(), "4", 1, 1)
	list := newPickList(t, hold)
	item := list.Items()[0]
	_, err := list.Pick(pickRequest(item, "4"), testNow)
	require.NoError(t, err)

	second := pickRequest(item, "1")
	second.ConfirmationID = "scan-again"
	cmd, err := commands.NewConfirmPickCommand(list.ID(), second)
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PickListRepository").Return(lists).Once()
	lists.On("GetForUpdate", ctx, list.ID()).Return(list, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewConfirmPickCommandHandler(factory, nil, nil, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, picking.ErrItemAlreadyPicked)
}

func TestConfirmPickCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPickingUoWFactory)
	handler := commands.NewConfirmPickCommandHandler(factory, nil, nil, testClock())

	_, err := handler.Handle(t.Context(), commands.ConfirmPickCommand{})

	require.ErrorIs(t, err, commands.ErrConfirmPickCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestConfirmPickCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	req := picking.PickRequest{
		ConfirmationID: "scan-1",
		ItemID:         kernel.NewUUID(),
		Quantity:       kernel.MustQuantity("1"),
		PickerID:       "picker-7",
		Method:         picking.Manual,
	}
	cmd, err := commands.NewConfirmPickCommand(kernel.NewUUID(), req)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewConfirmPickCommandHandler(factory, nil, nil, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
