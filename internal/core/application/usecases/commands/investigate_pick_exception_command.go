package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrInvestigatePickExceptionCommandIsNotConstructed = errors.New(
	"InvestigatePickExceptionCommand must be created via NewInvestigatePickExceptionCommand constructor",
)

type InvestigatePickExceptionCommand struct { //nolint:recvcheck //using for validation
	pickListID  kernel.UUID
	exceptionID kernel.UUID
	actor       string

	guard guard.ConstructorGuard
}

func NewInvestigatePickExceptionCommand(pickListID, exceptionID kernel.UUID, actor string) (InvestigatePickExceptionCommand, error) {
	actor, actorErr := requireText("actor", actor)
	if err := errors.Join(requireID("pickListId", pickListID), requireID("exceptionId", exceptionID), actorErr); err != nil {
		return InvestigatePickExceptionCommand{}, err
	}

	return InvestigatePickExceptionCommand{
		pickListID:  pickListID,
		exceptionID: exceptionID,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c InvestigatePickExceptionCommand) Validate() error {
	return c.guard.Validate(ErrInvestigatePickExceptionCommandIsNotConstructed)
}

func (c InvestigatePickExceptionCommand) PickListID() kernel.UUID { return c.pickListID }
func (c InvestigatePickExceptionCommand) ExceptionID() kernel.UUID { return c.exceptionID }
func (c InvestigatePickExceptionCommand) Actor() string { return c.actor }
