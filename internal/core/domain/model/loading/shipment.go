package loading

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Shipment is the outbound unit handed over by dispatch: the cartons of one
// order with their combined weight and volume.
type Shipment struct {
	id      kernel.UUID
	orderID kernel.UUID
	weight  kernel.Weight
	volume  kernel.Volume
}

// NewShipment validates identifiers and requires positive weight and volume.
func NewShipment(id, orderID kernel.UUID, weight kernel.Weight, volume kernel.Volume) (Shipment, error) {
	var weightErr, volumeErr error
	if !weight.IsPositive() {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%s is not greater than 0", weight))
	}
	if !volume.IsPositive() {
		volumeErr = errs.NewValueIsInvalidErrorWithCause("volume is invalid", fmt.Errorf("%s is not greater than 0", volume))
	}

	if err := errors.Join(id.Validate(), orderID.Validate(), weightErr, volumeErr); err != nil {
		return Shipment{}, err
	}

	return Shipment{id: id, orderID: orderID, weight: weight, volume: volume}, nil
}

func (s Shipment) ID() kernel.UUID { return s.id }
func (s Shipment) OrderID() kernel.UUID { return s.orderID }
func (s Shipment) Weight() kernel.Weight { return s.weight }
func (s Shipment) Volume() kernel.Volume { return s.volume }
