package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/pkg/guard"
)

var ErrReportPickExceptionCommandIsNotConstructed = errors.New(
	"ReportPickExceptionCommand must be created via NewReportPickExceptionCommand constructor",
)

// ReportPickExceptionCommand opens a manual exception against a pick list
// item. The item is blocked from picking until the exception is resolved.
type ReportPickExceptionCommand struct { //nolint:recvcheck //using for validation
	pickListID kernel.UUID
	itemID     kernel.UUID
	kind       picking.ExceptionType
	expected   kernel.Quantity
	actual     kernel.Quantity
	reportedBy string

	guard guard.ConstructorGuard
}

func NewReportPickExceptionCommand(
	pickListID kernel.UUID,
	itemID kernel.UUID,
	kind picking.ExceptionType,
	expected kernel.Quantity,
	actual kernel.Quantity,
	reportedBy string,
) (ReportPickExceptionCommand, error) {
	reportedBy, actorErr := requireText("reportedBy", reportedBy)
	if err := errors.Join(
		requireID("pickListId", pickListID),
		requireID("itemId", itemID),
		kind.Validate(),
		actorErr,
	); err != nil {
		return ReportPickExceptionCommand{}, err
	}

	return ReportPickExceptionCommand{
		pickListID: pickListID,
		itemID:     itemID,
		kind:       kind,
		expected:   expected,
		actual:     actual,
		reportedBy: reportedBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReportPickExceptionCommand) Validate() error {
	return c.guard.Validate(ErrReportPickExceptionCommandIsNotConstructed)
}

func (c ReportPickExceptionCommand) PickListID() kernel.UUID { return c.pickListID }
func (c ReportPickExceptionCommand) ItemID() kernel.UUID { return c.itemID }
func (c ReportPickExceptionCommand) Type() picking.ExceptionType { return c.kind }
func (c ReportPickExceptionCommand) ExpectedQuantity() kernel.Quantity { return c.expected }
func (c ReportPickExceptionCommand) ActualQuantity() kernel.Quantity { return c.actual }
func (c ReportPickExceptionCommand) ReportedBy() string { return c.reportedBy }
