package services

import (
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
)

// RateSelector chooses one carrier quote.
type RateSelector struct{}

func NewRateSelector() RateSelector {
	return RateSelector{}
}

// Best filters quotes by criteria and ranks the rest by the criteria strategy:
//   - cheapest: lower cost, then fewer transit days, then carrier/service name
//   - fastest: fewer transit days, then lower cost, then carrier/service name
//
// rating.ErrNoQuoteMatches is returned when no quote passes the filters.
func (s RateSelector) Best(quotes []rating.Quote, criteria rating.Criteria) (rating.Quote, error) {
	if err := criteria.Validate(); err != nil {
		return rating.Quote{}, err
	}

	admitted := make([]rating.Quote, 0, len(quotes))
	for _, q := range quotes {
		if criteria.Admits(q) {
			admitted = append(admitted, q)
		}
	}
	if len(admitted) == 0 {
		return rating.Quote{}, rating.ErrNoQuoteMatches
	}

	sort.SliceStable(admitted, func(i, j int) bool {
		return s.less(criteria.Strategy, admitted[i], admitted[j])
	})
	return admitted[0], nil
}

// SelectRate picks the best quote and snapshots the run as a ShoppingResult
// that stays usable for validity after now.
func (s RateSelector) SelectRate(
	orderID kernel.UUID,
	shipment rating.ShipmentSpec,
	quotes []rating.Quote,
	criteria rating.Criteria,
	now time.Time,
	validity time.Duration,
) (*rating.ShoppingResult, error) {
	selected, err := s.Best(quotes, criteria)
	if err != nil {
		return nil, err
	}
	return rating.NewShoppingResult(kernel.NewUUID(), orderID, shipment, quotes, criteria, selected, now, validity)
}

func (s RateSelector) less(strategy rating.Strategy, a, b rating.Quote) bool {
	byCost := a.Cost.Cmp(b.Cost)
	byDays := a.TransitDays - b.TransitDays

	primary, secondary := byCost, byDays
	if strategy == rating.Fastest {
		primary, secondary = byDays, byCost
	}

	switch {
	case primary != 0:
		return primary < 0
	case secondary != 0:
		return secondary < 0
	default:
		return a.Key() < b.Key()
	}
}
