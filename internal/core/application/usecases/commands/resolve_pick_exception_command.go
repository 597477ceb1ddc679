package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrResolvePickExceptionCommandIsNotConstructed = errors.New(
	"ResolvePickExceptionCommand must be created via NewResolvePickExceptionCommand constructor",
)

// ResolvePickExceptionCommand closes an exception with the adjudication text.
type ResolvePickExceptionCommand struct { //nolint:recvcheck //using for validation
	pickListID  kernel.UUID
	exceptionID kernel.UUID
	actor       string
	resolution  string

	guard guard.ConstructorGuard
}

func NewResolvePickExceptionCommand(
	pickListID kernel.UUID,
	exceptionID kernel.UUID,
	actor string,
	resolution string,
) (ResolvePickExceptionCommand, error) {
	actor, actorErr := requireText("actor", actor)
	resolution, resolutionErr := requireText("resolution", resolution)
	if err := errors.Join(
		requireID("pickListId", pickListID),
		requireID("exceptionId", exceptionID),
		actorErr,
		resolutionErr,
	); err != nil {
		return ResolvePickExceptionCommand{}, err
	}

	return ResolvePickExceptionCommand{
		pickListID:  pickListID,
		exceptionID: exceptionID,
		actor:       actor,
		resolution:  resolution,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ResolvePickExceptionCommand) Validate() error {
	return c.guard.Validate(ErrResolvePickExceptionCommandIsNotConstructed)
}

func (c ResolvePickExceptionCommand) PickListID() kernel.UUID { return c.pickListID }
func (c ResolvePickExceptionCommand) ExceptionID() kernel.UUID { return c.exceptionID }
func (c ResolvePickExceptionCommand) Actor() string { return c.actor }
func (c ResolvePickExceptionCommand) Resolution() string { return c.resolution }
