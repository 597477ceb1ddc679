package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReleaseExpiredAllocationsCommandIsNotConstructed = errors.New(
	"ReleaseExpiredAllocationsCommand must be created via NewReleaseExpiredAllocationsCommand constructor",
)

// ReleaseExpiredAllocationsCommand sweeps at most limit lapsed holds.
type ReleaseExpiredAllocationsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

func NewReleaseExpiredAllocationsCommand(limit int) (ReleaseExpiredAllocationsCommand, error) {
	if limit <= 0 {
		return ReleaseExpiredAllocationsCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	return ReleaseExpiredAllocationsCommand{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseExpiredAllocationsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseExpiredAllocationsCommandIsNotConstructed)
}

func (c ReleaseExpiredAllocationsCommand) Limit() int { return c.limit }
