package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetUsableRateQueryIsNotConstructed = errors.New(
	"GetUsableRateQuery must be created via NewGetUsableRateQuery constructor",
)

// GetUsableRateQuery asks for the carrier selection an order may still ship
// with. A selection past its expiry is never returned.
//
// Example:
//
//	query, err := NewGetUsableRateQuery(orderID)
//	rate, err := handler.Handle(ctx, query)
//	if errors.Is(err, rating.ErrQuoteExpired) {
//	    // shop again before generating a label
//	}
type GetUsableRateQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetUsableRateQuery(orderID kernel.UUID) (GetUsableRateQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetUsableRateQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetUsableRateQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUsableRateQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetUsableRateQuery) Validate() error {
	return q.guard.Validate(ErrGetUsableRateQueryIsNotConstructed)
}

// GetUsableRateQueryResponse is the selected quote of the latest usable
// shopping result.
type GetUsableRateQueryResponse struct {
	ResultID    kernel.UUID
	OrderID     kernel.UUID
	Carrier     string
	Service     string
	Cost        kernel.Money
	TransitDays int
	QuotedAt    time.Time
	ExpiresAt   time.Time
	FromCache   bool
}
