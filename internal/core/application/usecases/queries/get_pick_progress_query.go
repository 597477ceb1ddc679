package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPickProgressQueryIsNotConstructed = errors.New(
	"GetPickProgressQuery must be created via NewGetPickProgressQuery constructor",
)

// GetPickProgressQuery reads how far a pick list has come.
type GetPickProgressQuery struct {
	pickListID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetPickProgressQuery(pickListID kernel.UUID) (GetPickProgressQuery, error) {
	if err := pickListID.Validate(); err != nil {
		return GetPickProgressQuery{}, errs.NewValueIsRequiredErrorWithCause("pickListId", err)
	}
	return GetPickProgressQuery{pickListID: pickListID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPickProgressQuery) PickListID() kernel.UUID { return q.pickListID }

func (q GetPickProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetPickProgressQueryIsNotConstructed)
}

// GetPickProgressQueryResponse counts terminal items; short picks count as
// completed.
type GetPickProgressQueryResponse struct {
	PickListID         kernel.UUID
	Status             string
	TotalPicks         int
	CompletedPicks     int
	ShortPicks         int
	OpenExceptions     int
	ProgressPercentage decimal.Decimal
}
