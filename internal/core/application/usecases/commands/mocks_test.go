package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/model/priority"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func testClock() kernel.Clock { return kernel.FixedClock(testNow) }

func qty(s string) any {
	want := kernel.MustQuantity(s)
	return mock.MatchedBy(func(q kernel.Quantity) bool { return q.Equal(want) })
}

// MockUoW implements every unit-of-work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PriorityRepository() ports.PriorityRepository {
	args := m.Called()
	return args.Get(0).(ports.PriorityRepository)
}

func (m *MockUoW) AllocationRepository() ports.AllocationRepository {
	args := m.Called()
	return args.Get(0).(ports.AllocationRepository)
}

func (m *MockUoW) BackOrderRepository() ports.BackOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.BackOrderRepository)
}

func (m *MockUoW) PickListRepository() ports.PickListRepository {
	args := m.Called()
	return args.Get(0).(ports.PickListRepository)
}

func (m *MockUoW) CartonRepository() ports.CartonRepository {
	args := m.Called()
	return args.Get(0).(ports.CartonRepository)
}

func (m *MockUoW) CartonTypeRepository() ports.CartonTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.CartonTypeRepository)
}

func (m *MockUoW) LoadPlanRepository() ports.LoadPlanRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadPlanRepository)
}

func (m *MockUoW) DockScheduleRepository() ports.DockScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.DockScheduleRepository)
}

func (m *MockUoW) ShoppingResultRepository() ports.ShoppingResultRepository {
	args := m.Called()
	return args.Get(0).(ports.ShoppingResultRepository)
}

type MockPriorityUoWFactory struct{ mock.Mock }

func (m *MockPriorityUoWFactory) Create() commands.PriorityUoW {
	args := m.Called()
	return args.Get(0).(commands.PriorityUoW)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockPickingUoWFactory struct{ mock.Mock }

func (m *MockPickingUoWFactory) Create() commands.PickingUoW {
	args := m.Called()
	return args.Get(0).(commands.PickingUoW)
}

type MockPackingUoWFactory struct{ mock.Mock }

func (m *MockPackingUoWFactory) Create() commands.PackingUoW {
	args := m.Called()
	return args.Get(0).(commands.PackingUoW)
}

type MockLoadingUoWFactory struct{ mock.Mock }

func (m *MockLoadingUoWFactory) Create() commands.LoadingUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadingUoW)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

type MockPriorityRepository struct{ mock.Mock }

func (m *MockPriorityRepository) Save(ctx context.Context, p *priority.OrderPriority) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPriorityRepository) Get(ctx context.Context, orderID kernel.UUID) (*priority.OrderPriority, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*priority.OrderPriority), args.Error(1)
}

type MockAllocationRepository struct{ mock.Mock }

func (m *MockAllocationRepository) Add(ctx context.Context, a *allocation.Allocation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAllocationRepository) Update(ctx context.Context, a *allocation.Allocation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) FindByOrderLine(ctx context.Context, orderLineID kernel.UUID) ([]*allocation.Allocation, error) {
	args := m.Called(ctx, orderLineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) FindExpirable(ctx context.Context, now time.Time, limit int) ([]*allocation.Allocation, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) CompareAndExpire(ctx context.Context, a *allocation.Allocation) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}

type MockBackOrderRepository struct{ mock.Mock }

func (m *MockBackOrderRepository) Add(ctx context.Context, b *allocation.BackOrder) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBackOrderRepository) Update(ctx context.Context, b *allocation.BackOrder) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBackOrderRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.BackOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.BackOrder), args.Error(1)
}

func (m *MockBackOrderRepository) FindOpenForLine(ctx context.Context, orderLineID kernel.UUID) (*allocation.BackOrder, error) {
	args := m.Called(ctx, orderLineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.BackOrder), args.Error(1)
}

func (m *MockBackOrderRepository) FindPendingBackorders(
	ctx context.Context,
	warehouseID kernel.UUID,
	autoFulfillOnly bool,
) ([]*allocation.BackOrder, error) {
	args := m.Called(ctx, warehouseID, autoFulfillOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*allocation.BackOrder), args.Error(1)
}

func (m *MockBackOrderRepository) FindWarehousesWithPending(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockPickListRepository struct{ mock.Mock }

func (m *MockPickListRepository) Add(ctx context.Context, l *picking.PickList) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockPickListRepository) Update(ctx context.Context, l *picking.PickList) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockPickListRepository) Get(ctx context.Context, id kernel.UUID) (*picking.PickList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*picking.PickList), args.Error(1)
}

func (m *MockPickListRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*picking.PickList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*picking.PickList), args.Error(1)
}

type MockCartonRepository struct{ mock.Mock }

func (m *MockCartonRepository) Add(ctx context.Context, c *packing.PackedCarton) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartonRepository) Update(ctx context.Context, c *packing.PackedCarton) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartonRepository) Get(ctx context.Context, id kernel.UUID) (*packing.PackedCarton, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*packing.PackedCarton), args.Error(1)
}

type MockCartonTypeRepository struct{ mock.Mock }

func (m *MockCartonTypeRepository) Get(ctx context.Context, id kernel.UUID) (packing.CartonType, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(packing.CartonType), args.Error(1)
}

func (m *MockCartonTypeRepository) GetActive(ctx context.Context) ([]packing.CartonType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]packing.CartonType), args.Error(1)
}

type MockLoadPlanRepository struct{ mock.Mock }

func (m *MockLoadPlanRepository) Add(ctx context.Context, p *loading.LoadPlan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLoadPlanRepository) Update(ctx context.Context, p *loading.LoadPlan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLoadPlanRepository) Get(ctx context.Context, id kernel.UUID) (*loading.LoadPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loading.LoadPlan), args.Error(1)
}

func (m *MockLoadPlanRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*loading.LoadPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loading.LoadPlan), args.Error(1)
}

func (m *MockLoadPlanRepository) AssignedPlans(ctx context.Context, shipmentIDs []kernel.UUID) (map[kernel.UUID]kernel.UUID, error) {
	args := m.Called(ctx, shipmentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]kernel.UUID), args.Error(1)
}

func (m *MockLoadPlanRepository) FindOpenForUpdate(ctx context.Context, warehouseID kernel.UUID) ([]*loading.LoadPlan, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*loading.LoadPlan), args.Error(1)
}

type MockDockScheduleRepository struct{ mock.Mock }

func (m *MockDockScheduleRepository) Add(ctx context.Context, d *loading.DockSchedule) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDockScheduleRepository) Update(ctx context.Context, d *loading.DockSchedule) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDockScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*loading.DockSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loading.DockSchedule), args.Error(1)
}

func (m *MockDockScheduleRepository) LockDock(ctx context.Context, dockID kernel.UUID) error {
	args := m.Called(ctx, dockID)
	return args.Error(0)
}

func (m *MockDockScheduleRepository) FindActiveByDock(ctx context.Context, dockID kernel.UUID) ([]*loading.DockSchedule, error) {
	args := m.Called(ctx, dockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*loading.DockSchedule), args.Error(1)
}

type MockShoppingResultRepository struct{ mock.Mock }

func (m *MockShoppingResultRepository) Add(ctx context.Context, r *rating.ShoppingResult) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockShoppingResultRepository) GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*rating.ShoppingResult, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.ShoppingResult), args.Error(1)
}

type MockInventory struct{ mock.Mock }

func (m *MockInventory) EligibleRecords(ctx context.Context, productID, warehouseID kernel.UUID) ([]ports.InventoryRecord, error) {
	args := m.Called(ctx, productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.InventoryRecord), args.Error(1)
}

func (m *MockInventory) Reserve(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	args := m.Called(ctx, recordID, quantity)
	return args.Error(0)
}

func (m *MockInventory) Release(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	args := m.Called(ctx, recordID, quantity)
	return args.Error(0)
}

func (m *MockInventory) Commit(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	args := m.Called(ctx, recordID, quantity)
	return args.Error(0)
}

type MockCarriers struct{ mock.Mock }

func (m *MockCarriers) Quote(ctx context.Context, shipment rating.ShipmentSpec) ([]rating.Quote, error) {
	args := m.Called(ctx, shipment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rating.Quote), args.Error(1)
}

type MockRateCache struct{ mock.Mock }

func (m *MockRateCache) Put(ctx context.Context, result *rating.ShoppingResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockRateCache) Get(ctx context.Context, orderID kernel.UUID) (*rating.ShoppingResult, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.ShoppingResult), args.Error(1)
}

type MockAudit struct{ mock.Mock }

func (m *MockAudit) Record(ctx context.Context, event ports.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func auditAction(action string) any {
	return mock.MatchedBy(func(e ports.AuditEvent) bool { return e.Action == action })
}
