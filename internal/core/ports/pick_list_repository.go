package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
)

// PickListRepository defines the persistence contract for pick lists together
// with their items, confirmations and exceptions.
type PickListRepository interface {
	// Add persists a new pick list and its items.
	Add(ctx context.Context, aggregate *picking.PickList) error

	// Update persists list status, item progress, appended confirmations and
	// exceptions. Confirmations already stored are never rewritten.
	Update(ctx context.Context, aggregate *picking.PickList) error

	// Get retrieves a pick list without locking it.
	Get(ctx context.Context, id kernel.UUID) (*picking.PickList, error)

	// GetForUpdate retrieves a pick list and locks its row until the end of the
	// transaction, making the caller the single writer of the list.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*picking.PickList, error)
}
