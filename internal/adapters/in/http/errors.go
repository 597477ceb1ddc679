package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// conflicts are refusals caused by the current state of an aggregate.
var conflicts = []error{
	allocation.ErrInsufficientInventory,
	allocation.ErrAllocationExpired,
	allocation.ErrAllocationNotAvailable,
	loading.ErrCapacityExceeded,
	loading.ErrPlanNotOpen,
	loading.ErrAlreadyAssigned,
	loading.ErrShipmentNotAssigned,
	packing.ErrToleranceExceeded,
	packing.ErrRepackRequired,
	packing.ErrReinspectionRequired,
	packing.ErrNotVerified,
	picking.ErrExceptionOpen,
	picking.ErrItemAlreadyPicked,
	picking.ErrConfirmationConflict,
	rating.ErrQuoteExpired,
}

var notFound = []error{
	errs.ErrObjectNotFound,
	picking.ErrItemNotFound,
	picking.ErrExceptionNotFound,
}

var unprocessable = []error{
	packing.ErrNoCartonFits,
	rating.ErrNoQuoteMatches,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusOf maps a use case error to an HTTP status. Retryable failures win
// over everything they wrap.
func statusOf(err error) int {
	switch {
	case errs.IsRetryable(err):
		return http.StatusServiceUnavailable
	case isAny(err, notFound):
		return http.StatusNotFound
	case isAny(err, conflicts):
		return http.StatusConflict
	case isAny(err, unprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail renders a use case error. Server side failures are logged and hidden.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)
	body := servers.Error{Code: status, Message: err.Error()}

	var rejection *loading.RejectionError
	if errors.As(err, &rejection) {
		reason := string(rejection.Reason)
		body.Reason = &reason
	}

	switch status {
	case http.StatusServiceUnavailable:
		s.logger.WarnContext(c.Request().Context(), "collaborator unavailable",
			"path", c.Path(), "error", err)
		body.Message = "A downstream service is unavailable, retry later"
	case http.StatusInternalServerError:
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"path", c.Path(), "error", err)
		body.Message = "Internal server error"
	}

	return c.JSON(status, body)
}

// invalid rejects a request whose input could not be turned into a command.
func invalid(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// rejected reports a refusal that the use case returned as a result.
func rejected(c echo.Context, message, reason string) error {
	return c.JSON(http.StatusConflict, servers.Error{
		Code:    http.StatusConflict,
		Message: message,
		Reason:  &reason,
	})
}

// errorHandler renders echo errors (routing, binding) in the API error shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, servers.Error{Code: code, Message: message})
}
