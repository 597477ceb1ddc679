package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dockWindow(t *testing.T, fromHour, toHour int) kernel.TimeWindow {
	t.Helper()
	day := testNow.Truncate(24 * time.Hour)
	w, err := kernel.NewTimeWindow(day.Add(time.Duration(fromHour)*time.Hour), day.Add(time.Duration(toHour)*time.Hour))
	require.NoError(t, err)
	return w
}

func TestScheduleDockCommandHandler_Handle_Scheduled(t *testing.T) {
	ctx := t.Context()
	plan := newLoadPlan(t, "100", "10")
	dockID := kernel.NewUUID()
	cmd, err := commands.NewScheduleDockCommand(dockID, plan.ID(), dockWindow(t, 14, 15), "yard-1", "reefer")
	require.NoError(t, err)

	existing, err := loading.NewDockSchedule(kernel.NewUUID(), dockID, kernel.NewUUID(), dockWindow(t, 13, 14), "yard-1", "", testNow)
	require.NoError(t, err)

	plans := new(MockLoadPlanRepository)
	schedules := new(MockDockScheduleRepository)
	uow := new(MockUoW)
	factory := new(MockLoadingUoWFactory)
	audit := new(MockAudit)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadPlanRepository").Return(plans).Once(),
		plans.On("Get", ctx, plan.ID()).Return(plan, nil).Once(),
		uow.On("DockScheduleRepository").Return(schedules).Once(),
		schedules.On("LockDock", ctx, dockID).Return(nil).Once(),
		schedules.On("FindActiveByDock", ctx, dockID).Return([]*loading.DockSchedule{existing}, nil).Once(),
		schedules.On("Add", ctx, mock.AnythingOfType("*loading.DockSchedule")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		audit.On("Record", ctx, auditAction("dock.schedule")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDockCommandHandler(factory, audit, testClock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Scheduled)
	require.NotNil(t, result.Schedule)
	assert.Equal(t, loading.Scheduled, result.Schedule.Status())
	assert.Equal(t, "reefer", result.Schedule.Notes())
	assert.True(t, result.ConflictingID.IsZero())
	uow.AssertExpectations(t)
	schedules.AssertExpectations(t)
}

func TestScheduleDockCommandHandler_Handle_ConflictIsResult(t *testing.T) {
	ctx := t.Context()
	plan := newLoadPlan(t, "100", "10")
	dockID := kernel.NewUUID()
	cmd, err := commands.NewScheduleDockCommand(dockID, plan.ID(), dockWindow(t, 14, 16), "yard-1", "")
	require.NoError(t, err)

	blocking, err := loading.NewDockSchedule(kernel.NewUUID(), dockID, kernel.NewUUID(), dockWindow(t, 15, 17), "yard-2", "", testNow)
	require.NoError(t, err)

	plans := new(MockLoadPlanRepository)
	schedules := new(MockDockScheduleRepository)
	uow := new(MockUoW)
	factory := new(MockLoadingUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadPlanRepository").Return(plans).Once(),
		plans.On("Get", ctx, plan.ID()).Return(plan, nil).Once(),
		uow.On("DockScheduleRepository").Return(schedules).Once(),
		schedules.On("LockDock", ctx, dockID).Return(nil).Once(),
		schedules.On("FindActiveByDock", ctx, dockID).Return([]*loading.DockSchedule{blocking}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDockCommandHandler(factory, nil, testClock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Scheduled)
	assert.Nil(t, result.Schedule)
	assert.Equal(t, blocking.ID(), result.ConflictingID)
	schedules.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestScheduleDockCommandHandler_Handle_UnknownLoadPlan(t *testing.T) {
	ctx := t.Context()
	planID := kernel.NewUUID()
	cmd, err := commands.NewScheduleDockCommand(kernel.NewUUID(), planID, dockWindow(t, 8, 9), "yard-1", "")
	require.NoError(t, err)

	plans := new(MockLoadPlanRepository)
	uow := new(MockUoW)
	factory := new(MockLoadingUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadPlanRepository").Return(plans).Once(),
		plans.On("Get", ctx, planID).Return(nil, errs.NewObjectNotFoundError("loadPlanId", planID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDockCommandHandler(factory, nil, testClock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "DockScheduleRepository")
}

func TestScheduleDockCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockLoadingUoWFactory)
	handler := commands.NewScheduleDockCommandHandler(factory, nil, testClock())

	_, err := handler.Handle(t.Context(), commands.ScheduleDockCommand{})

	require.ErrorIs(t, err, commands.ErrScheduleDockCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewScheduleDockCommand_RequiresWindow(t *testing.T) {
	_, err := commands.NewScheduleDockCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.TimeWindow{}, "yard-1", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestChangeDockScheduleStatusCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		from    []loading.DockScheduleStatus
		to      loading.DockScheduleStatus
		wantErr error
	}{
		{name: "confirm", to: loading.Confirmed},
		{name: "no show from confirmed", from: []loading.DockScheduleStatus{loading.Confirmed}, to: loading.NoShow},
		{name: "skip to completed", to: loading.Completed, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			schedule, err := loading.NewDockSchedule(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), dockWindow(t, 10, 11), "yard-1", "", testNow)
			require.NoError(t, err)
			for _, st := range tt.from {
				require.NoError(t, schedule.ChangeStatus(st))
			}
			cmd, err := commands.NewChangeDockScheduleStatusCommand(schedule.ID(), tt.to, "yard-1")
			require.NoError(t, err)

			schedules := new(MockDockScheduleRepository)
			uow := new(MockUoW)
			factory := new(MockLoadingUoWFactory)
			audit := new(MockAudit)

			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("DockScheduleRepository").Return(schedules).Once()
			schedules.On("Get", ctx, schedule.ID()).Return(schedule, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tt.wantErr == nil {
				schedules.On("Update", ctx, schedule).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
				audit.On("Record", ctx, auditAction("dock.status")).Return(nil).Once()
			}

			handler := commands.NewChangeDockScheduleStatusCommandHandler(factory, audit, testClock())
			err = handler.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				uow.AssertNotCalled(t, "Commit", mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, schedule.Status())
			audit.AssertExpectations(t)
		})
	}
}

func TestChangeDockScheduleStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockLoadingUoWFactory)
	handler := commands.NewChangeDockScheduleStatusCommandHandler(factory, nil, testClock())

	err := handler.Handle(t.Context(), commands.ChangeDockScheduleStatusCommand{})

	require.ErrorIs(t, err, commands.ErrChangeDockScheduleStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
