// Package ports defines the contracts between the fulfillment domain and the
// infrastructure: repositories bound to a unit of work and the outbound
// collaborators (inventory, carriers, audit, rate cache).
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"
)

// PriorityRepository defines the persistence contract for order priorities.
// There is at most one priority per order.
type PriorityRepository interface {
	// Save inserts the priority or replaces the stored one for the same order.
	Save(ctx context.Context, aggregate *priority.OrderPriority) error

	// Get retrieves the priority of an order.
	// Returns errs.ObjectNotFoundError when the order was never scored.
	Get(ctx context.Context, orderID kernel.UUID) (*priority.OrderPriority, error)
}
