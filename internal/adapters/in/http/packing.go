package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// cartonContents is the part of a pack and a repack request that describes
// what went into the box.
type cartonContents struct {
	items            []packing.PackedItem
	expectedWeight   kernel.Weight
	actualWeight     kernel.Weight
	actualDimensions kernel.Dimensions
}

func toCartonContents(
	items []servers.PackedItemInput,
	expected, actual servers.Quantity,
	dims servers.DimensionsInput,
) (cartonContents, error) {
	var out cartonContents
	var err error
	if out.items, err = toPackedItems(items); err != nil {
		return cartonContents{}, err
	}
	if out.expectedWeight, err = toQuantity("expectedWeight", expected); err != nil {
		return cartonContents{}, err
	}
	if out.actualWeight, err = toQuantity("actualWeight", actual); err != nil {
		return cartonContents{}, err
	}
	if out.actualDimensions, err = toDimensions(dims); err != nil {
		return cartonContents{}, err
	}
	return out, nil
}

// PackCarton handles POST /api/v1/cartons.
func (s *Server) PackCarton(c echo.Context) error {
	var body servers.PackCartonJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	orderID, err := toUUID("orderId", body.OrderId)
	if err != nil {
		return invalid(c, err)
	}
	cartonTypeID, err := toOptionalUUID("cartonTypeId", body.CartonTypeId)
	if err != nil {
		return invalid(c, err)
	}
	contents, err := toCartonContents(body.Items, body.ExpectedWeight, body.ActualWeight, body.ActualDimensions)
	if err != nil {
		return invalid(c, err)
	}
	var itemDims []kernel.Dimensions
	for _, d := range deref(body.ItemDimensions) {
		dims, err := toDimensions(d)
		if err != nil {
			return invalid(c, err)
		}
		itemDims = append(itemDims, dims)
	}
	cmd, err := commands.NewPackCartonCommand(orderID, cartonTypeID, contents.items, itemDims,
		contents.expectedWeight, contents.actualWeight, contents.actualDimensions, body.PackerId)
	if err != nil {
		return invalid(c, err)
	}

	carton, err := s.handlers.PackCarton.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, fromCarton(carton))
}

// ValidateCarton handles POST /api/v1/cartons/{cartonId}/validate.
func (s *Server) ValidateCarton(c echo.Context, cartonId servers.CartonId) error {
	var body servers.ValidateCartonJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("cartonId", cartonId)
	if err != nil {
		return invalid(c, err)
	}
	var tolerances *packing.Tolerances
	if body.Tolerances != nil {
		tolerances = &packing.Tolerances{
			Weight:    body.Tolerances.Weight,
			Dimension: body.Tolerances.Dimension,
		}
	}
	cmd, err := commands.NewValidateCartonCommand(id, body.InspectorId, tolerances)
	if err != nil {
		return invalid(c, err)
	}

	result, err := s.handlers.ValidateCarton.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.Verifications.WithLabelValues(result.Weight.Status.String()).Inc()
	s.metrics.Verifications.WithLabelValues(result.Dimension.Status.String()).Inc()
	return c.JSON(http.StatusOK, servers.ValidationResult{
		Weight:    fromVerification(result.Weight.Result),
		Dimension: fromVerification(result.Dimension.Result),
		Passed:    result.Passed(),
	})
}

// OverrideCartonVerification handles POST /api/v1/cartons/{cartonId}/override.
func (s *Server) OverrideCartonVerification(c echo.Context, cartonId servers.CartonId) error {
	var body servers.OverrideCartonVerificationJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("cartonId", cartonId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewOverrideCartonVerificationCommand(id, body.InspectorId, body.Reason)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.OverrideCartonVerification.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RecordQualityCheck handles POST /api/v1/cartons/{cartonId}/quality-check.
func (s *Server) RecordQualityCheck(c echo.Context, cartonId servers.CartonId) error {
	var body servers.RecordQualityCheckJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("cartonId", cartonId)
	if err != nil {
		return invalid(c, err)
	}
	criteria := make([]packing.Criterion, 0, len(body.Criteria))
	for _, cr := range body.Criteria {
		criteria = append(criteria, packing.Criterion{
			Name:     cr.Name,
			Passed:   cr.Passed,
			Critical: deref(cr.Critical),
		})
	}
	cmd, err := commands.NewRecordQualityCheckCommand(id, criteria, body.MinPassRate, body.InspectorId)
	if err != nil {
		return invalid(c, err)
	}

	check, err := s.handlers.RecordQualityCheck.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromQualityCheck(check))
}

// RepackCarton handles POST /api/v1/cartons/{cartonId}/repack.
func (s *Server) RepackCarton(c echo.Context, cartonId servers.CartonId) error {
	var body servers.RepackCartonJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("cartonId", cartonId)
	if err != nil {
		return invalid(c, err)
	}
	contents, err := toCartonContents(body.Items, body.ExpectedWeight, body.ActualWeight, body.ActualDimensions)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewRepackCartonCommand(id, contents.items,
		contents.expectedWeight, contents.actualWeight, contents.actualDimensions, body.PackerId)
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.RepackCarton.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ShipCarton handles POST /api/v1/cartons/{cartonId}/ship.
func (s *Server) ShipCarton(c echo.Context, cartonId servers.CartonId) error {
	var body servers.ShipCartonJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return invalid(c, err)
	}

	id, err := toUUID("cartonId", cartonId)
	if err != nil {
		return invalid(c, err)
	}
	cmd, err := commands.NewShipCartonCommand(id, body.Actor, deref(body.Damaged))
	if err != nil {
		return invalid(c, err)
	}

	if err = s.handlers.ShipCarton.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
