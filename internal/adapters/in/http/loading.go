package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/labstack/echo/v4"
)

// CreateLoadPlan handles POST /api/v1/load-plans.
func (s *Server) CreateLoadPlan(c echo.Context) error {
	var body servers.CreateLoadPlanJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	warehouseID, err := toUUID("warehouseId", body.WarehouseId)
	if err != nil {
		return invalid(c, err)
	}
	capWeight, err := toQuantity("capacityWeight", body.CapacityWeight)
	if err != nil {
		return invalid(c, err)
	}
	capVolume, err := toQuantity("capacityVolume", body.CapacityVolume)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewCreateLoadPlanCommand(warehouseID, body.VehicleId, capWeight, capVolume, body.Actor)
	if err != nil {
		return invalid(c, err)
	}

	plan, err := s.handlers.CreateLoadPlan.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, fromLoadPlan(plan))
}

// AssignShipment handles POST /api/v1/load-plans/{loadPlanId}/shipments.
// A refused assignment is a 409 carrying the rejection reason.
func (s *Server) AssignShipment(c echo.Context, loadPlanId servers.LoadPlanId) error {
	var body servers.AssignShipmentJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	planID, err := toUUID("loadPlanId", loadPlanId)
	if err != nil {
		return invalid(c, err)
	}
	shipment, err := toShipment(body.Shipment)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewAssignShipmentToLoadCommand(planID, shipment, body.Actor, deref(body.OverrideReason))
	if err != nil {
		return invalid(c, err)
	}

	result, err := s.handlers.AssignShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	if !result.Accepted {
		s.metrics.LoadRejections.WithLabelValues(string(result.Reason)).Inc()
		return rejected(c, "shipment was not assigned to the load plan", string(result.Reason))
	}

	return c.JSON(http.StatusOK, servers.AssignmentResult{
		Accepted:          true,
		WeightUtilization: result.WeightUtilization.String(),
		VolumeUtilization: result.VolumeUtilization.String(),
	})
}

// RemoveShipment handles DELETE /api/v1/load-plans/{loadPlanId}/shipments/{shipmentId}.
func (s *Server) RemoveShipment(
	c echo.Context,
	loadPlanId servers.LoadPlanId,
	shipmentId openapi_types.UUID,
	params servers.RemoveShipmentParams,
) error {
	planID, err := toUUID("loadPlanId", loadPlanId)
	if err != nil {
		return invalid(c, err)
	}
	shipmentID, err := toUUID("shipmentId", shipmentId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewRemoveShipmentFromLoadCommand(planID, shipmentID, params.Actor)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.RemoveShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeLoadPlanStatus handles PUT /api/v1/load-plans/{loadPlanId}/status.
func (s *Server) ChangeLoadPlanStatus(c echo.Context, loadPlanId servers.LoadPlanId) error {
	var body servers.ChangeLoadPlanStatusJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	planID, err := toUUID("loadPlanId", loadPlanId)
	if err != nil {
		return invalid(c, err)
	}
	status, err := loading.ParseLoadPlanStatus(body.Status)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewChangeLoadPlanStatusCommand(planID, status, body.Actor)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.ChangeLoadPlanStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetLoadUtilization handles GET /api/v1/load-plans/{loadPlanId}/utilization.
func (s *Server) GetLoadUtilization(c echo.Context, loadPlanId servers.LoadPlanId) error {
	planID, err := toUUID("loadPlanId", loadPlanId)
	if err != nil {
		return invalid(c, err)
	}
	query, err := queries.NewGetLoadUtilizationQuery(planID)
	if err != nil {
		return invalid(c, err)
	}

	u, err := s.handlers.GetLoadUtilization.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.LoadUtilization{
		LoadPlanId:        u.LoadPlanID.Bytes(),
		VehicleId:         u.VehicleID,
		Status:            u.Status,
		ShipmentCount:     u.ShipmentCount,
		TotalWeight:       u.TotalWeight.String(),
		TotalVolume:       u.TotalVolume.String(),
		CapacityWeight:    u.CapacityWeight.String(),
		CapacityVolume:    u.CapacityVolume.String(),
		WeightUtilization: u.WeightUtilization.String(),
		VolumeUtilization: u.VolumeUtilization.String(),
		IsOverweight:      u.IsOverweight,
		IsOverVolume:      u.IsOverVolume,
	})
}

// PlanLoads handles POST /api/v1/warehouses/{warehouseId}/load-planning.
func (s *Server) PlanLoads(c echo.Context, warehouseId servers.WarehouseId) error {
	var body servers.PlanLoadsJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	warehouseID, err := toUUID("warehouseId", warehouseId)
	if err != nil {
		return invalid(c, err)
	}
	shipments := make([]loading.Shipment, 0, len(body.Shipments))
	for _, in := range body.Shipments {
		shipment, err := toShipment(in)
		if err != nil {
			return invalid(c, err)
		}
		shipments = append(shipments, shipment)
	}
	cmd, err := commands.NewPlanLoadsCommand(warehouseID, shipments, body.Actor)
	if err != nil {
		return invalid(c, err)
	}

	result, err := s.handlers.PlanLoads.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	response := servers.PlanningResult{
		Placements: make([]servers.Placement, 0, len(result.Placements)),
		Unplaced:   make([]servers.UnplacedShipment, 0, len(result.Unplaced)),
	}
	for _, p := range result.Placements {
		response.Placements = append(response.Placements, servers.Placement{
			ShipmentId: p.Shipment.ID().Bytes(),
			LoadPlanId: p.Plan.ID().Bytes(),
		})
	}
	for _, u := range result.Unplaced {
		s.metrics.LoadRejections.WithLabelValues(string(u.Reason)).Inc()
		response.Unplaced = append(response.Unplaced, servers.UnplacedShipment{
			ShipmentId: u.Shipment.ID().Bytes(),
			Reason:     string(u.Reason),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// ScheduleDock handles POST /api/v1/docks/{dockId}/schedules. An overlapping
// booking is a 409 naming the schedule it collides with.
func (s *Server) ScheduleDock(c echo.Context, dockId openapi_types.UUID) error {
	var body servers.ScheduleDockJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	dockID, err := toUUID("dockId", dockId)
	if err != nil {
		return invalid(c, err)
	}
	planID, err := toUUID("loadPlanId", body.LoadPlanId)
	if err != nil {
		return invalid(c, err)
	}
	window, err := kernel.NewTimeWindow(body.Start, body.End)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewScheduleDockCommand(dockID, planID, window, body.ScheduledBy, deref(body.Notes))
	if err != nil {
		return invalid(c, err)
	}

	result, err := s.handlers.ScheduleDock.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	if !result.Scheduled {
		s.metrics.DockConflicts.Inc()
		conflicting := result.ConflictingID.Bytes()
		return c.JSON(http.StatusConflict, servers.Error{
			Code:          http.StatusConflict,
			Message:       "dock is already booked for an overlapping window",
			ConflictingId: &conflicting,
		})
	}
	return c.JSON(http.StatusCreated, fromDockSchedule(result.Schedule))
}

// ChangeDockScheduleStatus handles PUT /api/v1/dock-schedules/{scheduleId}/status.
func (s *Server) ChangeDockScheduleStatus(c echo.Context, scheduleId openapi_types.UUID) error {
	var body servers.ChangeDockScheduleStatusJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("scheduleId", scheduleId)
	if err != nil {
		return invalid(c, err)
	}
	status, err := loading.ParseDockScheduleStatus(body.Status)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewChangeDockScheduleStatusCommand(id, status, body.Actor)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.ChangeDockScheduleStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
