package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ScoreOrder handles POST /api/v1/orders/{orderId}/priority.
func (s *Server) ScoreOrder(c echo.Context, orderId servers.OrderId) error {
	var body servers.ScoreOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("orderId", orderId)
	if err != nil {
		return invalid(c, err)
	}
	value, err := kernel.NewMoney(body.OrderValue)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewScoreOrderCommand(id, priority.Factors{
		Tier:       priority.NormalizeTier(deref(body.CustomerTier)),
		OrderValue: value,
		ShipDate:   body.ShipDate,
		Extra:      deref(body.Attributes),
	})
	if err != nil {
		return invalid(c, err)
	}

	result, err := s.handlers.ScoreOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.PriorityScore{
		OrderId: result.OrderID.Bytes(),
		Score:   result.Score.String(),
		Level:   result.Level.String(),
		Contributions: servers.PriorityContributions{
			Base:    result.Contributions.Base.String(),
			Tier:    result.Contributions.Tier.String(),
			Value:   result.Contributions.Value.String(),
			Urgency: result.Contributions.Urgency.String(),
		},
		ManualOverride: result.ManualOverride,
		Recomputed:     result.Recomputed,
	})
}

// OverrideOrderPriority handles PUT /api/v1/orders/{orderId}/priority/override.
func (s *Server) OverrideOrderPriority(c echo.Context, orderId servers.OrderId) error {
	var body servers.OverrideOrderPriorityJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("orderId", orderId)
	if err != nil {
		return invalid(c, err)
	}
	level, err := priority.ParseLevel(string(body.Level))
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewOverridePriorityCommand(id, level, body.Actor, body.Reason)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.OverridePriority.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ClearOrderPriorityOverride handles DELETE /api/v1/orders/{orderId}/priority/override.
func (s *Server) ClearOrderPriorityOverride(
	c echo.Context,
	orderId servers.OrderId,
	params servers.ClearOrderPriorityOverrideParams,
) error {
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewClearPriorityOverrideCommand(id, params.Actor)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.ClearPriorityOverride.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
