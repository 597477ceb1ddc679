package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryRecord is one stock position as seen by the allocator.
type InventoryRecord struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	WarehouseID kernel.UUID
	Location    kernel.BinLocation
	Lot         string
	Serial      string
	Available   kernel.Quantity
}

// InventoryService is the outbound contract of the inventory system.
//
// Implementations return allocation.ErrInsufficientInventory when a record no
// longer holds the requested quantity and errs.RetryableError when the
// inventory system could not be reached.
type InventoryService interface {
	// EligibleRecords returns records of the product in the warehouse with a
	// positive available quantity, ordered by the rotation policy (FIFO/FEFO).
	EligibleRecords(ctx context.Context, productID, warehouseID kernel.UUID) ([]InventoryRecord, error)

	// Reserve atomically reserves quantity on the record, or fails without
	// side effects. It never reserves part of the quantity.
	Reserve(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error

	// Release returns a previously reserved quantity to the record.
	Release(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error

	// Commit turns a reserved quantity into a withdrawal once it was picked:
	// on-hand and reserved both drop by quantity.
	Commit(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error
}
