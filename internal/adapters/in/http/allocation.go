package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/labstack/echo/v4"
)

// AllocateOrderLine handles POST /api/v1/allocations.
func (s *Server) AllocateOrderLine(c echo.Context) error {
	var body servers.AllocateOrderLineJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	line, err := toLine(body)
	if err != nil {
		return invalid(c, err)
	}
	qty, err := toQuantity("quantity", body.Quantity)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewAllocateOrderLineCommand(line, qty, seconds(body.TtlSeconds),
		deref(body.AutoFulfill), body.ExpectedFulfillmentDate)
	if err != nil {
		return invalid(c, err)
	}

	result, err := s.handlers.AllocateOrderLine.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.Allocations.Add(float64(len(result.Allocations)))
	response := servers.AllocationResult{
		Allocations:      make([]servers.Allocation, 0, len(result.Allocations)),
		Allocated:        result.Allocated.String(),
		Shortfall:        result.Shortfall.String(),
		BackorderCreated: result.BackOrderCreated,
	}
	for _, a := range result.Allocations {
		response.Allocations = append(response.Allocations, fromAllocation(a))
	}
	if result.BackOrder != nil {
		if result.BackOrderCreated {
			s.metrics.Backorders.Inc()
		}
		b := fromBackOrder(result.BackOrder)
		response.Backorder = &b
	}

	return c.JSON(http.StatusCreated, response)
}

func toLine(body servers.AllocateRequest) (allocation.Line, error) {
	var line allocation.Line
	var err error
	if line.OrderID, err = toUUID("orderId", body.OrderId); err != nil {
		return allocation.Line{}, err
	}
	if line.OrderLineID, err = toUUID("orderLineId", body.OrderLineId); err != nil {
		return allocation.Line{}, err
	}
	if line.ProductID, err = toUUID("productId", body.ProductId); err != nil {
		return allocation.Line{}, err
	}
	if line.WarehouseID, err = toUUID("warehouseId", body.WarehouseId); err != nil {
		return allocation.Line{}, err
	}
	return line, nil
}

// ReleaseExpiredAllocations handles POST /api/v1/allocations/release-expired.
func (s *Server) ReleaseExpiredAllocations(c echo.Context) error {
	var body servers.ReleaseExpiredAllocationsJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	limit := s.defaults.ReleaseBatch
	if body.Limit != nil {
		limit = *body.Limit
	}
	cmd, err := commands.NewReleaseExpiredAllocationsCommand(limit)
	if err != nil {
		return invalid(c, err)
	}

	released, err := s.handlers.ReleaseExpired.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.ExpiredReleases.Add(float64(len(released)))
	return c.JSON(http.StatusOK, servers.ReleasedAllocations{ReleasedIds: fromUUIDs(released)})
}

// CancelAllocation handles POST /api/v1/allocations/{allocationId}/cancel.
func (s *Server) CancelAllocation(c echo.Context, allocationId servers.AllocationId) error {
	var body servers.CancelAllocationJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("allocationId", allocationId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewCancelAllocationCommand(id, body.Actor)
	if err != nil {
		return invalid(c, err)
	}

	released, err := s.handlers.CancelAllocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.CancelledAllocation{ReleasedQuantity: released.String()})
}

// RenewAllocation handles POST /api/v1/allocations/{allocationId}/renew.
func (s *Server) RenewAllocation(c echo.Context, allocationId servers.AllocationId) error {
	var body servers.RenewAllocationJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("allocationId", allocationId)
	if err != nil {
		return invalid(c, err)
	}
	ttl := s.defaults.RenewTTL
	if body.TtlSeconds != nil {
		ttl = seconds(body.TtlSeconds)
	}
	cmd, err := commands.NewRenewAllocationCommand(id, ttl, body.Actor)
	if err != nil {
		return invalid(c, err)
	}

	expiresAt, err := s.handlers.RenewAllocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.RenewedAllocation{ExpiresAt: expiresAt})
}

// GetWarehouseBackorders handles GET /api/v1/warehouses/{warehouseId}/backorders.
func (s *Server) GetWarehouseBackorders(
	c echo.Context,
	warehouseId servers.WarehouseId,
	params servers.GetWarehouseBackordersParams,
) error {
	id, err := toUUID("warehouseId", warehouseId)
	if err != nil {
		return invalid(c, err)
	}
	query, err := queries.NewGetBackordersByWarehouseQuery(id, deref(params.OpenOnly))
	if err != nil {
		return invalid(c, err)
	}

	rows, err := s.handlers.GetBackorders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.Backorder, 0, len(rows))
	for _, row := range rows {
		response = append(response, servers.Backorder{
			Id:                      row.ID.Bytes(),
			OrderId:                 row.OrderID.Bytes(),
			OrderLineId:             row.OrderLineID.Bytes(),
			ProductId:               row.ProductID.Bytes(),
			Backordered:             row.Backordered.String(),
			Fulfilled:               row.Fulfilled.String(),
			Remaining:               row.Remaining.String(),
			Status:                  row.Status,
			AutoFulfill:             row.AutoFulfill,
			ExpectedFulfillmentDate: row.ExpectedFulfillmentDate,
			CreatedAt:               row.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, response)
}

// FulfillWarehouseBackorders handles POST /api/v1/warehouses/{warehouseId}/backorders/fulfill.
func (s *Server) FulfillWarehouseBackorders(c echo.Context, warehouseId servers.WarehouseId) error {
	var body servers.FulfillWarehouseBackordersJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("warehouseId", warehouseId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewFulfillBackordersCommand(id, seconds(body.TtlSeconds))
	if err != nil {
		return invalid(c, err)
	}

	fulfilled, err := s.handlers.FulfillBackorders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.BackordersFulfilled.Add(float64(len(fulfilled)))
	response := make([]servers.BackorderFulfillment, 0, len(fulfilled))
	for _, f := range fulfilled {
		response = append(response, servers.BackorderFulfillment{
			BackOrderId:   f.BackOrderID.Bytes(),
			Fulfilled:     f.Fulfilled.String(),
			AllocationIds: fromUUIDs(f.AllocationIDs),
			Status:        f.Status.String(),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// CancelBackorder handles POST /api/v1/backorders/{backOrderId}/cancel.
func (s *Server) CancelBackorder(c echo.Context, backOrderId openapi_types.UUID) error {
	var body servers.CancelBackorderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("backOrderId", backOrderId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewCancelBackOrderCommand(id, body.Actor)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.CancelBackOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
