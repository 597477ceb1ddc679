package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
)

// AllocationRepository defines the persistence contract for inventory holds.
type AllocationRepository interface {
	// Add persists a new allocation.
	Add(ctx context.Context, aggregate *allocation.Allocation) error

	// Update persists the picked quantity, status and expiry of an allocation.
	// Only a row that is still allocated or partially picked is written;
	// otherwise allocation.ErrAllocationNotAvailable is returned.
	Update(ctx context.Context, aggregate *allocation.Allocation) error

	// Get retrieves an allocation by its identifier.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error)

	// GetForUpdate retrieves an allocation and locks its row until the end of
	// the transaction. Every command that changes an allocation reads it here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error)

	// FindByOrderLine returns every allocation of an order line, oldest first.
	FindByOrderLine(ctx context.Context, orderLineID kernel.UUID) ([]*allocation.Allocation, error)

	// FindExpirable returns up to limit allocations that are still allocated,
	// have nothing picked and whose hold lapsed before now.
	FindExpirable(ctx context.Context, now time.Time, limit int) ([]*allocation.Allocation, error)

	// CompareAndExpire stores the Expired status of aggregate only if the row is
	// still allocated with nothing picked. It reports whether the row changed.
	//
	// Example:
	//   released, err := a.Expire(now)
	//   ok, err := repo.CompareAndExpire(ctx, a)
	//   if ok {
	//       inventory.Release(ctx, a.Source().InventoryRecordID, released)
	//   }
	CompareAndExpire(ctx context.Context, aggregate *allocation.Allocation) (bool, error)
}

// BackOrderRepository defines the persistence contract for backorders.
type BackOrderRepository interface {
	// Add persists a new backorder.
	Add(ctx context.Context, aggregate *allocation.BackOrder) error

	// Update persists quantities and status of a backorder.
	Update(ctx context.Context, aggregate *allocation.BackOrder) error

	// Get retrieves a backorder by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*allocation.BackOrder, error)

	// FindOpenForLine returns the pending or partially fulfilled backorder of an
	// order line. Returns errs.ObjectNotFoundError when the line has none.
	FindOpenForLine(ctx context.Context, orderLineID kernel.UUID) (*allocation.BackOrder, error)

	// FindPendingBackorders returns the open backorders of a warehouse in
	// creation order, auto-fulfill ones only when autoFulfillOnly is set.
	FindPendingBackorders(ctx context.Context, warehouseID kernel.UUID, autoFulfillOnly bool) ([]*allocation.BackOrder, error)

	// FindWarehousesWithPending lists the warehouses that have at least one
	// open auto-fulfill backorder.
	FindWarehousesWithPending(ctx context.Context) ([]kernel.UUID, error)
}
