package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(t *testing.T, carrier, service, cost string, days int) rating.Quote {
	t.Helper()
	q, err := rating.NewQuote(carrier, service, kernel.MustMoney(cost), days)
	require.NoError(t, err)
	return q
}

func TestRateSelector_Best(t *testing.T) {
	ground := quote(t, "ups", "ground", "12.50", 5)
	express := quote(t, "ups", "express", "30.00", 1)
	economy := quote(t, "dhl", "economy", "12.50", 4)
	priorityMail := quote(t, "usps", "priority", "18.00", 2)
	overnight := quote(t, "fedex", "overnight", "25.00", 1)
	quotes := []rating.Quote{ground, express, economy, priorityMail, overnight}

	selector := services.NewRateSelector()
	days := func(n int) *int { return &n }
	money := func(s string) *kernel.Money {
		m := kernel.MustMoney(s)
		return &m
	}

	tests := []struct {
		name     string
		criteria rating.Criteria
		want     rating.Quote
	}{
		{"cheapest breaks cost ties by transit days", rating.Criteria{Strategy: rating.Cheapest}, economy},
		{"fastest breaks day ties by cost", rating.Criteria{Strategy: rating.Fastest}, overnight},
		{"fastest under a cost ceiling", rating.Criteria{Strategy: rating.Fastest, MaxCost: money("20")}, priorityMail},
		{"cheapest within transit days", rating.Criteria{Strategy: rating.Cheapest, MaxTransitDays: days(2)}, priorityMail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selector.Best(quotes, tt.criteria)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should order full ties by carrier and service", func(t *testing.T) {
		a := quote(t, "zeta", "std", "10", 3)
		b := quote(t, "alpha", "std", "10", 3)

		got, err := selector.Best([]rating.Quote{a, b}, rating.Criteria{Strategy: rating.Cheapest})

		require.NoError(t, err)
		assert.Equal(t, b, got)
	})

	t.Run("should report when nothing qualifies", func(t *testing.T) {
		_, err := selector.Best(quotes, rating.Criteria{Strategy: rating.Cheapest, MaxTransitDays: days(0)})
		require.ErrorIs(t, err, rating.ErrNoQuoteMatches)

		_, err = selector.Best(nil, rating.Criteria{Strategy: rating.Fastest})
		require.ErrorIs(t, err, rating.ErrNoQuoteMatches)
	})

	t.Run("should reject unknown strategy", func(t *testing.T) {
		_, err := selector.Best(quotes, rating.Criteria{})
		require.Error(t, err)
	})
}

func TestRateSelector_SelectRate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := kernel.NewUUID()
	spec := rating.ShipmentSpec{
		Weight:      kernel.MustQuantity("2.5"),
		Volume:      kernel.MustQuantity("0.01"),
		Origin:      "WH-1",
		Destination: "10115",
	}
	quotes := []rating.Quote{quote(t, "ups", "ground", "12.50", 5), quote(t, "dhl", "express", "22.00", 1)}

	result, err := services.NewRateSelector().SelectRate(orderID, spec, quotes, rating.Criteria{Strategy: rating.Fastest}, now, 15*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, orderID, result.OrderID())
	assert.Equal(t, now.Add(15*time.Minute), result.ExpiresAt())

	selected, err := result.SelectedQuote(now.Add(14 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "dhl/express", selected.Key())

	_, err = result.SelectedQuote(now.Add(15 * time.Minute))
	require.ErrorIs(t, err, rating.ErrQuoteExpired)
}
