package rating

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrQuoteExpired is returned when using a selection past its expiry.
	ErrQuoteExpired = errors.New("rate quote expired")
	// ErrNoQuoteMatches is returned when no quote satisfies the criteria.
	ErrNoQuoteMatches = errors.New("no quote matches the criteria")
)

// Quote is one carrier/service offer.
type Quote struct {
	Carrier     string
	Service     string
	Cost        kernel.Money
	TransitDays int
}

// NewQuote trims names and validates the offer.
func NewQuote(carrier, service string, cost kernel.Money, transitDays int) (Quote, error) {
	carrier = strings.TrimSpace(carrier)
	service = strings.TrimSpace(service)

	var carrierErr, serviceErr, daysErr error
	if carrier == "" {
		carrierErr = errs.NewValueIsRequiredError("carrier")
	}
	if service == "" {
		serviceErr = errs.NewValueIsRequiredError("service")
	}
	if transitDays < 0 {
		daysErr = errs.NewValueIsOutOfRangeError("transitDays", transitDays, 0, "unbounded")
	}
	if err := errors.Join(carrierErr, serviceErr, daysErr); err != nil {
		return Quote{}, err
	}

	return Quote{Carrier: carrier, Service: service, Cost: cost, TransitDays: transitDays}, nil
}

// Key identifies the carrier/service pair, e.g. "ups/ground".
func (q Quote) Key() string {
	return q.Carrier + "/" + q.Service
}

func (q Quote) String() string {
	return fmt.Sprintf("%s %s in %dd", q.Key(), q.Cost, q.TransitDays)
}
