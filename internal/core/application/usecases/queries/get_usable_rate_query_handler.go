package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/core/ports"
)

// GetUsableRateQueryHandler reads the rate cache first and falls back to the
// latest stored shopping result. Cache failures are treated as misses.
type GetUsableRateQueryHandler struct {
	cache   ports.RateCache
	results ports.ShoppingResultRepository
	clock   kernel.Clock
}

func NewGetUsableRateQueryHandler(
	cache ports.RateCache,
	results ports.ShoppingResultRepository,
	clock kernel.Clock,
) GetUsableRateQueryHandler {
	return GetUsableRateQueryHandler{cache: cache, results: results, clock: clock}
}

// Handle returns rating.ErrQuoteExpired when the latest result is no longer
// usable and errs.ObjectNotFoundError when the order was never quoted.
func (h GetUsableRateQueryHandler) Handle(ctx context.Context, query GetUsableRateQuery) (GetUsableRateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUsableRateQueryResponse{}, err
	}

	now := h.clock.Now()
	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, query.OrderID()); err == nil {
			if selected, err := cached.SelectedQuote(now); err == nil {
				return toUsableRate(cached, selected, true), nil
			}
		}
	}

	result, err := h.results.GetLatestForOrder(ctx, query.OrderID())
	if err != nil {
		return GetUsableRateQueryResponse{}, err
	}
	selected, err := result.SelectedQuote(now)
	if err != nil {
		return GetUsableRateQueryResponse{}, err
	}
	return toUsableRate(result, selected, false), nil
}

func toUsableRate(r *rating.ShoppingResult, q rating.Quote, fromCache bool) GetUsableRateQueryResponse {
	return GetUsableRateQueryResponse{
		ResultID:    r.ID(),
		OrderID:     r.OrderID(),
		Carrier:     q.Carrier,
		Service:     q.Service,
		Cost:        q.Cost,
		TransitDays: q.TransitDays,
		QuotedAt:    r.QuotedAt(),
		ExpiresAt:   r.ExpiresAt(),
		FromCache:   fromCache,
	}
}
