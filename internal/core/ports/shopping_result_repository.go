package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
)

// ShoppingResultRepository keeps every rate-shopping run.
type ShoppingResultRepository interface {
	Add(ctx context.Context, aggregate *rating.ShoppingResult) error

	// GetLatestForOrder returns the most recent result of an order, usable or
	// not. Returns errs.ObjectNotFoundError when the order was never quoted.
	GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*rating.ShoppingResult, error)
}
