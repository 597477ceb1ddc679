package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/guard"
)

var ErrValidateCartonCommandIsNotConstructed = errors.New(
	"ValidateCartonCommand must be created via NewValidateCartonCommand constructor",
)

// ValidateCartonCommand verifies a carton's measurements. Nil tolerances
// fall back to the configured defaults.
type ValidateCartonCommand struct { //nolint:recvcheck //using for validation
	cartonID    kernel.UUID
	inspectorID string
	tolerances  *packing.Tolerances

	guard guard.ConstructorGuard
}

func NewValidateCartonCommand(cartonID kernel.UUID, inspectorID string, tolerances *packing.Tolerances) (ValidateCartonCommand, error) {
	inspectorID, inspectorErr := requireText("inspectorId", inspectorID)
	if err := errors.Join(requireID("cartonId", cartonID), inspectorErr); err != nil {
		return ValidateCartonCommand{}, err
	}

	return ValidateCartonCommand{
		cartonID:    cartonID,
		inspectorID: inspectorID,
		tolerances:  tolerances,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ValidateCartonCommand) Validate() error {
	return c.guard.Validate(ErrValidateCartonCommandIsNotConstructed)
}

func (c ValidateCartonCommand) CartonID() kernel.UUID { return c.cartonID }
func (c ValidateCartonCommand) InspectorID() string { return c.inspectorID }
func (c ValidateCartonCommand) Tolerances() *packing.Tolerances { return c.tolerances }
