package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
)

// RateCache keeps the latest usable shopping result per order until it expires.
type RateCache interface {
	// Put stores result under its order id for as long as it is usable.
	Put(ctx context.Context, result *rating.ShoppingResult) error

	// Get returns the cached result of an order, or errs.ObjectNotFoundError on
	// a miss.
	Get(ctx context.Context, orderID kernel.UUID) (*rating.ShoppingResult, error)
}
