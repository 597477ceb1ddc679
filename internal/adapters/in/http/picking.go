package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/labstack/echo/v4"
)

// CreatePickList handles POST /api/v1/pick-lists.
func (s *Server) CreatePickList(c echo.Context) error {
	var body servers.CreatePickListJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	warehouseID, err := toUUID("warehouseId", body.WarehouseId)
	if err != nil {
		return invalid(c, err)
	}
	waveID, err := toOptionalUUID("waveId", body.WaveId)
	if err != nil {
		return invalid(c, err)
	}
	allocationIDs, err := toUUIDs("allocationIds", body.AllocationIds)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewCreatePickListCommand(warehouseID, waveID, body.PickerId, allocationIDs)
	if err != nil {
		return invalid(c, err)
	}

	list, err := s.handlers.CreatePickList.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, fromPickList(list))
}

// ConfirmPick handles POST /api/v1/pick-lists/{pickListId}/items/{itemId}/picks.
func (s *Server) ConfirmPick(c echo.Context, pickListId servers.PickListId, itemId openapi_types.UUID) error {
	var body servers.ConfirmPickJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	listID, err := toUUID("pickListId", pickListId)
	if err != nil {
		return invalid(c, err)
	}
	item, err := toUUID("itemId", itemId)
	if err != nil {
		return invalid(c, err)
	}
	qty, err := toQuantity("quantity", body.Quantity)
	if err != nil {
		return invalid(c, err)
	}
	method, err := picking.ParseMethod(string(body.Method))
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewConfirmPickCommand(listID, picking.PickRequest{
		ConfirmationID: body.ConfirmationId,
		ItemID:         item,
		Quantity:       qty,
		PickerID:       body.PickerId,
		Method:         method,
		Notes:          deref(body.Notes),
	})
	if err != nil {
		return invalid(c, err)
	}

	outcome, err := s.handlers.ConfirmPick.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	response := servers.PickOutcome{
		ItemId:         outcome.ItemID.Bytes(),
		AllocationId:   outcome.AllocationID.Bytes(),
		PickedQuantity: outcome.PickedQty.String(),
		ItemStatus:     outcome.ItemStatus.String(),
		Replayed:       outcome.Replayed,
		ListCompleted:  outcome.ListCompleted,
	}
	switch {
	case outcome.Replayed:
		s.metrics.Picks.WithLabelValues("replayed").Inc()
	case outcome.Exception != nil:
		s.metrics.Picks.WithLabelValues("short").Inc()
		s.metrics.PickExceptions.WithLabelValues(outcome.Exception.Type().String()).Inc()
	default:
		s.metrics.Picks.WithLabelValues("picked").Inc()
	}
	if outcome.Exception != nil {
		e := fromPickException(outcome.Exception)
		response.Exception = &e
	}
	return c.JSON(http.StatusOK, response)
}

// GetPickProgress handles GET /api/v1/pick-lists/{pickListId}/progress.
func (s *Server) GetPickProgress(c echo.Context, pickListId servers.PickListId) error {
	id, err := toUUID("pickListId", pickListId)
	if err != nil {
		return invalid(c, err)
	}
	query, err := queries.NewGetPickProgressQuery(id)
	if err != nil {
		return invalid(c, err)
	}

	progress, err := s.handlers.GetPickProgress.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.PickProgress{
		PickListId:         progress.PickListID.Bytes(),
		Status:             progress.Status,
		TotalPicks:         progress.TotalPicks,
		CompletedPicks:     progress.CompletedPicks,
		ShortPicks:         progress.ShortPicks,
		OpenExceptions:     progress.OpenExceptions,
		ProgressPercentage: progress.ProgressPercentage.String(),
	})
}

// ReportPickException handles POST /api/v1/pick-lists/{pickListId}/exceptions.
func (s *Server) ReportPickException(c echo.Context, pickListId servers.PickListId) error {
	var body servers.ReportPickExceptionJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	listID, err := toUUID("pickListId", pickListId)
	if err != nil {
		return invalid(c, err)
	}
	itemID, err := toUUID("itemId", body.ItemId)
	if err != nil {
		return invalid(c, err)
	}
	kind, err := picking.ParseExceptionType(string(body.Type))
	if err != nil {
		return invalid(c, err)
	}
	expected, err := toQuantity("expectedQuantity", body.ExpectedQuantity)
	if err != nil {
		return invalid(c, err)
	}
	actual, err := toQuantity("actualQuantity", body.ActualQuantity)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewReportPickExceptionCommand(listID, itemID, kind, expected, actual, body.ReportedBy)
	if err != nil {
		return invalid(c, err)
	}

	exception, err := s.handlers.ReportPickException.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.PickExceptions.WithLabelValues(exception.Type().String()).Inc()
	return c.JSON(http.StatusCreated, fromPickException(exception))
}

// InvestigatePickException handles
// POST /api/v1/pick-lists/{pickListId}/exceptions/{exceptionId}/investigate.
func (s *Server) InvestigatePickException(
	c echo.Context,
	pickListId servers.PickListId,
	exceptionId servers.ExceptionId,
) error {
	var body servers.InvestigatePickExceptionJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	listID, err := toUUID("pickListId", pickListId)
	if err != nil {
		return invalid(c, err)
	}
	excID, err := toUUID("exceptionId", exceptionId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewInvestigatePickExceptionCommand(listID, excID, body.Actor)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.InvestigatePickException.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResolvePickException handles
// POST /api/v1/pick-lists/{pickListId}/exceptions/{exceptionId}/resolve.
func (s *Server) ResolvePickException(
	c echo.Context,
	pickListId servers.PickListId,
	exceptionId servers.ExceptionId,
) error {
	var body servers.ResolvePickExceptionJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	listID, err := toUUID("pickListId", pickListId)
	if err != nil {
		return invalid(c, err)
	}
	excID, err := toUUID("exceptionId", exceptionId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewResolvePickExceptionCommand(listID, excID, body.Actor, body.Resolution)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.ResolvePickException.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
