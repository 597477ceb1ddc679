package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRenewAllocationCommandIsNotConstructed = errors.New(
	"RenewAllocationCommand must be created via NewRenewAllocationCommand constructor",
)

// RenewAllocationCommand extends a live hold to now + ttl.
type RenewAllocationCommand struct { //nolint:recvcheck //using for validation
	allocationID kernel.UUID
	ttl          time.Duration
	actor        string

	guard guard.ConstructorGuard
}

func NewRenewAllocationCommand(allocationID kernel.UUID, ttl time.Duration, actor string) (RenewAllocationCommand, error) {
	var ttlErr error
	if ttl <= 0 {
		ttlErr = errs.NewValueIsInvalidErrorWithCause("ttl is invalid", fmt.Errorf("%s is not positive", ttl))
	}
	actor, actorErr := requireText("actor", actor)

	if err := errors.Join(requireID("allocationId", allocationID), ttlErr, actorErr); err != nil {
		return RenewAllocationCommand{}, err
	}

	return RenewAllocationCommand{
		allocationID: allocationID,
		ttl:          ttl,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RenewAllocationCommand) Validate() error {
	return c.guard.Validate(ErrRenewAllocationCommandIsNotConstructed)
}

func (c RenewAllocationCommand) AllocationID() kernel.UUID { return c.allocationID }
func (c RenewAllocationCommand) TTL() time.Duration { return c.ttl }
func (c RenewAllocationCommand) Actor() string { return c.actor }
