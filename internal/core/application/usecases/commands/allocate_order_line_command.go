package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAllocateOrderLineCommandIsNotConstructed = errors.New(
	"AllocateOrderLineCommand must be created via NewAllocateOrderLineCommand constructor",
)

// AllocateOrderLineCommand reserves stock for one order line. A zero TTL means
// the configured default hold time.
type AllocateOrderLineCommand struct { //nolint:recvcheck //using for validation
	line                    allocation.Line
	quantity                kernel.Quantity
	ttl                     time.Duration
	autoFulfill             bool
	expectedFulfillmentDate *time.Time

	guard guard.ConstructorGuard
}

func NewAllocateOrderLineCommand(
	line allocation.Line,
	quantity kernel.Quantity,
	ttl time.Duration,
	autoFulfill bool,
	expectedFulfillmentDate *time.Time,
) (AllocateOrderLineCommand, error) {
	var ttlErr error
	if ttl < 0 {
		ttlErr = errs.NewValueIsInvalidErrorWithCause("ttl is invalid", fmt.Errorf("%s is negative", ttl))
	}

	if err := errors.Join(line.Validate(), requirePositive("quantity", quantity), ttlErr); err != nil {
		return AllocateOrderLineCommand{}, err
	}

	return AllocateOrderLineCommand{
		line:                    line,
		quantity:                quantity,
		ttl:                     ttl,
		autoFulfill:             autoFulfill,
		expectedFulfillmentDate: expectedFulfillmentDate,
		guard:                   guard.NewConstructorGuard(),
	}, nil
}

func (c AllocateOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAllocateOrderLineCommandIsNotConstructed)
}

func (c AllocateOrderLineCommand) Line() allocation.Line { return c.line }
func (c AllocateOrderLineCommand) Quantity() kernel.Quantity { return c.quantity }
func (c AllocateOrderLineCommand) TTL() time.Duration { return c.ttl }
func (c AllocateOrderLineCommand) AutoFulfill() bool { return c.autoFulfill }
func (c AllocateOrderLineCommand) ExpectedFulfillmentDate() *time.Time { return c.expectedFulfillmentDate }
