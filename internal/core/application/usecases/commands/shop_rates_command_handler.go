package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ShopRatesCommandHandler collects quotes under a deadline, stores the
// selection and puts it into the rate cache.
type ShopRatesCommandHandler struct {
	uowFactory RatingUoWFactory
	carriers   ports.CarrierQuoteService
	selector   services.RateSelector
	cache      ports.RateCache
	audit      ports.AuditService
	clock      kernel.Clock
	validity   time.Duration
	timeout    time.Duration
}

func NewShopRatesCommandHandler(
	uowFactory RatingUoWFactory,
	carriers ports.CarrierQuoteService,
	selector services.RateSelector,
	cache ports.RateCache,
	audit ports.AuditService,
	clock kernel.Clock,
	validity time.Duration,
	timeout time.Duration,
) ShopRatesCommandHandler {
	return ShopRatesCommandHandler{
		uowFactory: uowFactory,
		carriers:   carriers,
		selector:   selector,
		cache:      cache,
		audit:      audit,
		clock:      clock,
		validity:   validity,
		timeout:    timeout,
	}
}

// Handle returns rating.ErrNoQuoteMatches when no quote passes the criteria
// and a retryable error when the carriers did not answer in time.
func (h *ShopRatesCommandHandler) Handle(ctx context.Context, cmd ShopRatesCommand) (*rating.ShoppingResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	quoteCtx, cancel := context.WithTimeout(ctx, h.timeout)
	quotes, err := h.carriers.Quote(quoteCtx, cmd.Shipment())
	cancel()
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	result, err := h.selector.SelectRate(cmd.OrderID(), cmd.Shipment(), quotes, cmd.Criteria(), now, h.validity)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShoppingResultRepository().Add(ctx, result); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// The stored row is the source of truth; a cache miss only costs a read.
	if h.cache != nil {
		_ = h.cache.Put(ctx, result)
	}

	selected, _ := result.SelectedQuote(now)
	recordAudit(ctx, h.audit, "rates.shop", "system", "shopping_result", result.ID().String(),
		map[string]any{
			"orderId":  cmd.OrderID().String(),
			"quotes":   len(quotes),
			"selected": selected.Key(),
			"strategy": cmd.Criteria().Strategy.String(),
		}, now)
	return result, nil
}
