package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrFulfillBackordersCommandIsNotConstructed = errors.New(
	"FulfillBackordersCommand must be created via NewFulfillBackordersCommand constructor",
)

// FulfillBackordersCommand retries the auto-fulfill backorders of one
// warehouse. A zero warehouse id sweeps every warehouse with pending
// backorders; a zero TTL means the configured default hold time.
type FulfillBackordersCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	ttl         time.Duration

	guard guard.ConstructorGuard
}

func NewFulfillBackordersCommand(warehouseID kernel.UUID, ttl time.Duration) (FulfillBackordersCommand, error) {
	if ttl < 0 {
		return FulfillBackordersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"ttl is invalid", fmt.Errorf("%s is negative", ttl))
	}

	return FulfillBackordersCommand{
		warehouseID: warehouseID,
		ttl:         ttl,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c FulfillBackordersCommand) Validate() error {
	return c.guard.Validate(ErrFulfillBackordersCommandIsNotConstructed)
}

func (c FulfillBackordersCommand) WarehouseID() kernel.UUID { return c.warehouseID }
func (c FulfillBackordersCommand) TTL() time.Duration { return c.ttl }
