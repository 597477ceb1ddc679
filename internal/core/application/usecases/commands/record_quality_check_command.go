package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordQualityCheckCommandIsNotConstructed = errors.New(
	"RecordQualityCheckCommand must be created via NewRecordQualityCheckCommand constructor",
)

type RecordQualityCheckCommand struct { //nolint:recvcheck //using for validation
	cartonID    kernel.UUID
	criteria    []packing.Criterion
	minPassRate decimal.Decimal
	inspectorID string

	guard guard.ConstructorGuard
}

func NewRecordQualityCheckCommand(
	cartonID kernel.UUID,
	criteria []packing.Criterion,
	minPassRate decimal.Decimal,
	inspectorID string,
) (RecordQualityCheckCommand, error) {
	var criteriaErr error
	if len(criteria) == 0 {
		criteriaErr = errs.NewValueIsRequiredError("criteria")
	}
	inspectorID, inspectorErr := requireText("inspectorId", inspectorID)

	if err := errors.Join(requireID("cartonId", cartonID), criteriaErr, inspectorErr); err != nil {
		return RecordQualityCheckCommand{}, err
	}

	return RecordQualityCheckCommand{
		cartonID:    cartonID,
		criteria:    append([]packing.Criterion(nil), criteria...),
		minPassRate: minPassRate,
		inspectorID: inspectorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RecordQualityCheckCommand) Validate() error {
	return c.guard.Validate(ErrRecordQualityCheckCommandIsNotConstructed)
}

func (c RecordQualityCheckCommand) CartonID() kernel.UUID { return c.cartonID }
func (c RecordQualityCheckCommand) Criteria() []packing.Criterion { return c.criteria }
func (c RecordQualityCheckCommand) MinPassRate() decimal.Decimal { return c.minPassRate }
func (c RecordQualityCheckCommand) InspectorID() string { return c.inspectorID }
