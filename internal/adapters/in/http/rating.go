package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ShopRates handles POST /api/v1/rates/shop.
func (s *Server) ShopRates(c echo.Context) error {
	var body servers.ShopRatesJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	orderID, err := toUUID("orderId", body.OrderId)
	if err != nil {
		return invalid(c, err)
	}
	spec, err := toShipmentSpec(body.Shipment)
	if err != nil {
		return invalid(c, err)
	}
	criteria, err := toCriteria(body)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewShopRatesCommand(orderID, spec, criteria)
	if err != nil {
		return invalid(c, err)
	}

	result, err := s.handlers.ShopRates.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.metrics.RateShops.WithLabelValues(shopOutcome(err)).Inc()
		return s.fail(c, err)
	}

	s.metrics.RateShops.WithLabelValues("selected").Inc()
	return c.JSON(http.StatusOK, fromShoppingResult(result))
}

func shopOutcome(err error) string {
	switch {
	case errors.Is(err, rating.ErrNoQuoteMatches):
		return "no_match"
	case errs.IsRetryable(err):
		return "unavailable"
	default:
		return "error"
	}
}

func toShipmentSpec(in servers.ShipmentSpec) (rating.ShipmentSpec, error) {
	weight, err := toQuantity("shipment.weight", in.Weight)
	if err != nil {
		return rating.ShipmentSpec{}, err
	}
	var volume kernel.Volume
	if in.Volume != nil {
		if volume, err = toQuantity("shipment.volume", *in.Volume); err != nil {
			return rating.ShipmentSpec{}, err
		}
	}
	return rating.ShipmentSpec{
		Weight:      weight,
		Volume:      volume,
		Origin:      in.Origin,
		Destination: in.Destination,
	}, nil
}

func toCriteria(body servers.ShopRatesRequest) (rating.Criteria, error) {
	var strategy string
	if body.Strategy != nil {
		strategy = string(*body.Strategy)
	}
	parsed, err := rating.ParseStrategy(strategy)
	if err != nil {
		return rating.Criteria{}, err
	}

	criteria := rating.Criteria{Strategy: parsed, MaxTransitDays: body.MaxTransitDays}
	if body.MaxCost != nil {
		maxCost, err := kernel.NewMoney(*body.MaxCost)
		if err != nil {
			return rating.Criteria{}, err
		}
		criteria.MaxCost = &maxCost
	}
	return criteria, nil
}

// GetOrderRate handles GET /api/v1/orders/{orderId}/rate.
func (s *Server) GetOrderRate(c echo.Context, orderId servers.OrderId) error {
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return invalid(c, err)
	}
	query, err := queries.NewGetUsableRateQuery(id)
	if err != nil {
		return invalid(c, err)
	}

	rate, err := s.handlers.GetUsableRate.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.UsableRate{
		ResultId:    rate.ResultID.Bytes(),
		OrderId:     rate.OrderID.Bytes(),
		Carrier:     rate.Carrier,
		Service:     rate.Service,
		Cost:        rate.Cost.String(),
		TransitDays: rate.TransitDays,
		QuotedAt:    rate.QuotedAt,
		ExpiresAt:   rate.ExpiresAt,
		FromCache:   rate.FromCache,
	})
}
