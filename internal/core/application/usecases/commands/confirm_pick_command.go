package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmPickCommandIsNotConstructed = errors.New(
	"ConfirmPickCommand must be created via NewConfirmPickCommand constructor",
)

// ConfirmPickCommand reports one pick against an item of a list. The
// confirmation id makes retries of the same scan safe.
type ConfirmPickCommand struct { //nolint:recvcheck //using for validation
	pickListID kernel.UUID
	request    picking.PickRequest

	guard guard.ConstructorGuard
}

func NewConfirmPickCommand(pickListID kernel.UUID, request picking.PickRequest) (ConfirmPickCommand, error) {
	if err := errors.Join(requireID("pickListId", pickListID), request.Validate()); err != nil {
		return ConfirmPickCommand{}, err
	}

	return ConfirmPickCommand{
		pickListID: pickListID,
		request:    request,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPickCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickCommandIsNotConstructed)
}

func (c ConfirmPickCommand) PickListID() kernel.UUID { return c.pickListID }
func (c ConfirmPickCommand) Request() picking.PickRequest { return c.request }
