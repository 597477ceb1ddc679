package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBackordersByWarehouseQueryIsNotConstructed = errors.New(
	"GetBackordersByWarehouseQuery must be created via NewGetBackordersByWarehouseQuery constructor",
)

// GetBackordersByWarehouseQuery lists the backorders of a warehouse, oldest
// first. With openOnly set, fulfilled and cancelled ones are left out.
type GetBackordersByWarehouseQuery struct {
	warehouseID kernel.UUID
	openOnly    bool
	guard       guard.ConstructorGuard
}

func NewGetBackordersByWarehouseQuery(warehouseID kernel.UUID, openOnly bool) (GetBackordersByWarehouseQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetBackordersByWarehouseQuery{}, errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}
	return GetBackordersByWarehouseQuery{
		warehouseID: warehouseID,
		openOnly:    openOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetBackordersByWarehouseQuery) WarehouseID() kernel.UUID { return q.warehouseID }
func (q GetBackordersByWarehouseQuery) OpenOnly() bool           { return q.openOnly }

func (q GetBackordersByWarehouseQuery) Validate() error {
	return q.guard.Validate(ErrGetBackordersByWarehouseQueryIsNotConstructed)
}

type GetBackordersByWarehouseQueryResponse struct {
	ID                      kernel.UUID
	OrderID                 kernel.UUID
	OrderLineID             kernel.UUID
	ProductID               kernel.UUID
	Backordered             decimal.Decimal
	Fulfilled               decimal.Decimal
	Remaining               decimal.Decimal
	Status                  string
	AutoFulfill             bool
	ExpectedFulfillmentDate *time.Time
	CreatedAt               time.Time
}
