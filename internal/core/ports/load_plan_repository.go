package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
)

// LoadPlanRepository defines the persistence contract for load plans. The
// shipments of a plan are stored in their own table and reloaded with it.
type LoadPlanRepository interface {
	// Add persists a new plan with its shipments.
	Add(ctx context.Context, aggregate *loading.LoadPlan) error

	// Update persists the status and replaces the shipment list of a plan.
	// Writing a shipment that is stored on another plan fails with a
	// *loading.RejectionError carrying loading.AlreadyAssigned.
	Update(ctx context.Context, aggregate *loading.LoadPlan) error

	// AssignedPlans maps each of shipmentIDs that is on a plan, whatever its
	// status, to that plan. Unassigned shipments are absent from the map.
	AssignedPlans(ctx context.Context, shipmentIDs []kernel.UUID) (map[kernel.UUID]kernel.UUID, error)

	// Get retrieves a plan without locking it.
	Get(ctx context.Context, id kernel.UUID) (*loading.LoadPlan, error)

	// GetForUpdate retrieves a plan and locks its row until the end of the
	// transaction so capacity checks of concurrent assignments serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*loading.LoadPlan, error)

	// FindOpenForUpdate locks and returns the planned or loading plans of a
	// warehouse in creation order.
	FindOpenForUpdate(ctx context.Context, warehouseID kernel.UUID) ([]*loading.LoadPlan, error)
}

// DockScheduleRepository defines the persistence contract for dock schedules.
type DockScheduleRepository interface {
	Add(ctx context.Context, aggregate *loading.DockSchedule) error
	Update(ctx context.Context, aggregate *loading.DockSchedule) error
	Get(ctx context.Context, id kernel.UUID) (*loading.DockSchedule, error)

	// LockDock takes a transaction-scoped lock on the dock so that overlap
	// checks and inserts for the same dock run one at a time.
	LockDock(ctx context.Context, dockID kernel.UUID) error

	// FindActiveByDock returns the schedules of a dock that still occupy it.
	FindActiveByDock(ctx context.Context, dockID kernel.UUID) ([]*loading.DockSchedule, error)
}
