package rating

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrShoppingResultIsNotConstructed is returned when using a zero-value ShoppingResult.
var ErrShoppingResultIsNotConstructed = errors.New("ShoppingResult must be created via NewShoppingResult constructor")

// ShoppingResult is the snapshot of one rate-shopping run for an order.
type ShoppingResult struct {
	id        kernel.UUID
	orderID   kernel.UUID
	shipment  ShipmentSpec
	quotes    []Quote
	criteria  Criteria
	selected  Quote
	quotedAt  time.Time
	expiresAt time.Time
	guard     guard.ConstructorGuard
}

// NewShoppingResult records a selection that stays usable for validity.
func NewShoppingResult(
	id kernel.UUID,
	orderID kernel.UUID,
	shipment ShipmentSpec,
	quotes []Quote,
	criteria Criteria,
	selected Quote,
	quotedAt time.Time,
	validity time.Duration,
) (*ShoppingResult, error) {
	if validity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("validity is invalid", fmt.Errorf("%s is not positive", validity))
	}
	return RestoreShoppingResult(id, orderID, shipment, quotes, criteria, selected, quotedAt, quotedAt.Add(validity))
}

// RestoreShoppingResult rebuilds a ShoppingResult from persistence or cache.
func RestoreShoppingResult(
	id kernel.UUID,
	orderID kernel.UUID,
	shipment ShipmentSpec,
	quotes []Quote,
	criteria Criteria,
	selected Quote,
	quotedAt time.Time,
	expiresAt time.Time,
) (*ShoppingResult, error) {
	var selectedErr error
	if selected.Carrier == "" || selected.Service == "" {
		selectedErr = errs.NewValueIsRequiredError("selected")
	}
	var quotesErr error
	if len(quotes) == 0 {
		quotesErr = errs.NewValueIsRequiredError("quotes")
	}
	var expiryErr error
	if !expiresAt.After(quotedAt) {
		expiryErr = errs.NewValueIsInvalidErrorWithCause("expiresAt is invalid", errors.New("not after quotedAt"))
	}

	if err := errors.Join(id.Validate(), orderID.Validate(), selectedErr, quotesErr, expiryErr); err != nil {
		return nil, err
	}

	copied := make([]Quote, len(quotes))
	copy(copied, quotes)

	return &ShoppingResult{
		id:        id,
		orderID:   orderID,
		shipment:  shipment,
		quotes:    copied,
		criteria:  criteria,
		selected:  selected,
		quotedAt:  quotedAt,
		expiresAt: expiresAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (r *ShoppingResult) Validate() error {
	if r == nil {
		return ErrShoppingResultIsNotConstructed
	}
	return r.guard.Validate(ErrShoppingResultIsNotConstructed)
}

func (r *ShoppingResult) ID() kernel.UUID { return r.id }
func (r *ShoppingResult) OrderID() kernel.UUID { return r.orderID }
func (r *ShoppingResult) Shipment() ShipmentSpec { return r.shipment }
func (r *ShoppingResult) Criteria() Criteria { return r.criteria }
func (r *ShoppingResult) QuotedAt() time.Time { return r.quotedAt }
func (r *ShoppingResult) ExpiresAt() time.Time { return r.expiresAt }

// Selected returns the selection without checking expiry. Callers deciding
// whether to ship with it use SelectedQuote.
func (r *ShoppingResult) Selected() Quote { return r.selected }

func (r *ShoppingResult) Quotes() []Quote {
	out := make([]Quote, len(r.quotes))
	copy(out, r.quotes)
	return out
}

// IsUsable reports whether now < expiresAt.
func (r *ShoppingResult) IsUsable(now time.Time) bool {
	return now.Before(r.expiresAt)
}

// SelectedQuote returns the selection while it is usable and ErrQuoteExpired
// afterwards.
func (r *ShoppingResult) SelectedQuote(now time.Time) (Quote, error) {
	if !r.IsUsable(now) {
		return Quote{}, fmt.Errorf("%w: expired at %s", ErrQuoteExpired, r.expiresAt.Format(time.RFC3339))
	}
	return r.selected, nil
}
