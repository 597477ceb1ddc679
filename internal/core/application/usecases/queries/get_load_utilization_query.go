package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLoadUtilizationQueryIsNotConstructed = errors.New(
	"GetLoadUtilizationQuery must be created via NewGetLoadUtilizationQuery constructor",
)

// GetLoadUtilizationQuery reads the fill level of a load plan. Totals are
// summed from the assigned shipments on every call.
type GetLoadUtilizationQuery struct {
	loadPlanID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetLoadUtilizationQuery(loadPlanID kernel.UUID) (GetLoadUtilizationQuery, error) {
	if err := loadPlanID.Validate(); err != nil {
		return GetLoadUtilizationQuery{}, errs.NewValueIsRequiredErrorWithCause("loadPlanId", err)
	}
	return GetLoadUtilizationQuery{loadPlanID: loadPlanID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoadUtilizationQuery) LoadPlanID() kernel.UUID { return q.loadPlanID }

func (q GetLoadUtilizationQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadUtilizationQueryIsNotConstructed)
}

type GetLoadUtilizationQueryResponse struct {
	LoadPlanID        kernel.UUID
	VehicleID         string
	Status            string
	ShipmentCount     int
	TotalWeight       decimal.Decimal
	TotalVolume       decimal.Decimal
	CapacityWeight    decimal.Decimal
	CapacityVolume    decimal.Decimal
	WeightUtilization decimal.Decimal
	VolumeUtilization decimal.Decimal
	IsOverweight      bool
	IsOverVolume      bool
}
