package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrOverrideCartonVerificationCommandIsNotConstructed = errors.New(
	"OverrideCartonVerificationCommand must be created via NewOverrideCartonVerificationCommand constructor",
)

// OverrideCartonVerificationCommand lets an inspector release a carton whose
// verification failed.
type OverrideCartonVerificationCommand struct { //nolint:recvcheck //using for validation
	cartonID    kernel.UUID
	inspectorID string
	reason      string

	guard guard.ConstructorGuard
}

func NewOverrideCartonVerificationCommand(cartonID kernel.UUID, inspectorID, reason string) (OverrideCartonVerificationCommand, error) {
	inspectorID, inspectorErr := requireText("inspectorId", inspectorID)
	reason, reasonErr := requireText("reason", reason)
	if err := errors.Join(requireID("cartonId", cartonID), inspectorErr, reasonErr); err != nil {
		return OverrideCartonVerificationCommand{}, err
	}

	return OverrideCartonVerificationCommand{
		cartonID:    cartonID,
		inspectorID: inspectorID,
		reason:      reason,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideCartonVerificationCommand) Validate() error {
	return c.guard.Validate(ErrOverrideCartonVerificationCommandIsNotConstructed)
}

func (c OverrideCartonVerificationCommand) CartonID() kernel.UUID { return c.cartonID }
func (c OverrideCartonVerificationCommand) InspectorID() string { return c.inspectorID }
func (c OverrideCartonVerificationCommand) Reason() string { return c.reason }
