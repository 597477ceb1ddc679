package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectPickListLocked(uow *MockUoW, lists *MockPickListRepository, factory *MockPickingUoWFactory, list *picking.PickList) {
	ctx := mock.Anything
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickListRepository").Return(lists).Once(),
		lists.On("GetForUpdate", ctx, list.ID()).Return(list, nil).Once(),
	)
}

func TestReportPickExceptionCommandHandler_Handle_BlocksItem(t *testing.T) {
	ctx := t.Context()
	list := newPickList(t, holdAt(t, testLine(), "4", 1, 1))
	item := list.Items()[0]
	cmd, err := commands.NewReportPickExceptionCommand(list.ID(), item.ID(), picking.Damaged,
		kernel.MustQuantity("4"), kernel.MustQuantity("2"), "picker-7")
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)
	audit := new(MockAudit)
	expectPickListLocked(uow, lists, factory, list)
	lists.On("Update", ctx, list).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	audit.On("Record", ctx, auditAction("pick_exception.report")).Return(nil).Once()

	handler := commands.NewReportPickExceptionCommandHandler(factory, audit, testClock())
	exception, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, picking.ExceptionOpen, exception.Status())
	assert.Equal(t, "picker-7", exception.ReportedBy())
	assert.True(t, list.HasUnresolvedException(item.ID()))

	_, err = list.Pick(pickRequest(item, "4"), testNow)
	require.ErrorIs(t, err, picking.ErrExceptionOpen)
	uow.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestReportPickExceptionCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	list := newPickList(t, holdAt(t, testLine(), "4", 1, 1))
	cmd, err := commands.NewReportPickExceptionCommand(list.ID(), kernel.NewUUID(), picking.WrongItem,
		kernel.MustQuantity("1"), kernel.ZeroQuantity(), "picker-7")
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)
	expectPickListLocked(uow, lists, factory, list)
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewReportPickExceptionCommandHandler(factory, nil, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, picking.ErrItemNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewReportPickExceptionCommand_InvalidType(t *testing.T) {
	_, err := commands.NewReportPickExceptionCommand(kernel.NewUUID(), kernel.NewUUID(), picking.UnknownExceptionType,
		kernel.MustQuantity("1"), kernel.ZeroQuantity(), "picker-7")
	require.Error(t, err)
}

func TestInvestigateAndResolvePickException(t *testing.T) {
	ctx := t.Context()
	list := newPickList(t, holdAt(t, testLine(), "4", 1, 1))
	item := list.Items()[0]
	exception, err := list.ReportException(item.ID(), picking.LocationEmpty, kernel.MustQuantity("4"), kernel.ZeroQuantity(), "picker-7", testNow)
	require.NoError(t, err)

	investigate, err := commands.NewInvestigatePickExceptionCommand(list.ID(), exception.ID(), "lead-1")
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)
	expectPickListLocked(uow, lists, factory, list)
	lists.On("Update", ctx, list).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	investigateHandler := commands.NewInvestigatePickExceptionCommandHandler(factory, nil, testClock())
	require.NoError(t, investigateHandler.Handle(ctx, investigate))
	assert.Equal(t, picking.ExceptionInvestigating, exception.Status())

	resolve, err := commands.NewResolvePickExceptionCommand(list.ID(), exception.ID(), "lead-1", "stock found in overflow bin")
	require.NoError(t, err)

	resolveLists := new(MockPickListRepository)
	resolveUow := new(MockUoW)
	resolveFactory := new(MockPickingUoWFactory)
	expectPickListLocked(resolveUow, resolveLists, resolveFactory, list)
	resolveLists.On("Update", ctx, list).Return(nil).Once()
	resolveUow.On("Commit", ctx).Return(nil).Once()
	resolveUow.On("Rollback", ctx).Return(nil).Once()

	resolveHandler := commands.NewResolvePickExceptionCommandHandler(resolveFactory, nil, testClock())
	require.NoError(t, resolveHandler.Handle(ctx, resolve))

	assert.Equal(t, picking.ExceptionResolved, exception.Status())
	assert.Equal(t, "lead-1", exception.ResolvedBy())
	assert.False(t, list.HasUnresolvedException(item.ID()))
	resolveUow.AssertExpectations(t)
}

func TestResolvePickExceptionCommandHandler_Handle_UnknownException(t *testing.T) {
	ctx := t.Context()
	list := newPickList(t, holdAt(t, testLine(), "4", 1, 1))
	cmd, err := commands.NewResolvePickExceptionCommand(list.ID(), kernel.NewUUID(), "lead-1", "n/a")
	require.NoError(t, err)

	lists := new(MockPickListRepository)
	uow := new(MockUoW)
	factory := new(MockPickingUoWFactory)
	expectPickListLocked(uow, lists, factory, list)
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewResolvePickExceptionCommandHandler(factory, nil, testClock())
	require.ErrorIs(t, handler.Handle(ctx, cmd), picking.ErrExceptionNotFound)
}

func TestPickExceptionCommandHandlers_ValidationError(t *testing.T) {
	factory := new(MockPickingUoWFactory)

	report := commands.NewReportPickExceptionCommandHandler(factory, nil, testClock())
	_, err := report.Handle(t.Context(), commands.ReportPickExceptionCommand{})
	require.ErrorIs(t, err, commands.ErrReportPickExceptionCommandIsNotConstructed)

	investigate := commands.NewInvestigatePickExceptionCommandHandler(factory, nil, testClock())
	require.ErrorIs(t, investigate.Handle(t.Context(), commands.InvestigatePickExceptionCommand{}),
		commands.ErrInvestigatePickExceptionCommandIsNotConstructed)

	resolve := commands.NewResolvePickExceptionCommandHandler(factory, nil, testClock())
	require.ErrorIs(t, resolve.Handle(t.Context(), commands.ResolvePickExceptionCommand{}),
		commands.ErrResolvePickExceptionCommandIsNotConstructed)

	factory.AssertNotCalled(t, "Create")
}
