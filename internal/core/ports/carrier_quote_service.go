package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/rating"
)

// CarrierQuoteService collects rate quotes from the configured carriers.
// A deadline or unreachable carrier surfaces as errs.RetryableError.
type CarrierQuoteService interface {
	Quote(ctx context.Context, shipment rating.ShipmentSpec) ([]rating.Quote, error)
}
