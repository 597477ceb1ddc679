package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/pkg/guard"
)

var ErrShopRatesCommandIsNotConstructed = errors.New(
	"ShopRatesCommand must be created via NewShopRatesCommand constructor",
)

// ShopRatesCommand asks every configured carrier for a quote and keeps the
// best one under the criteria.
type ShopRatesCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	shipment rating.ShipmentSpec
	criteria rating.Criteria

	guard guard.ConstructorGuard
}

func NewShopRatesCommand(orderID kernel.UUID, shipment rating.ShipmentSpec, criteria rating.Criteria) (ShopRatesCommand, error) {
	if err := errors.Join(requireID("orderId", orderID), shipment.Validate(), criteria.Validate()); err != nil {
		return ShopRatesCommand{}, err
	}

	return ShopRatesCommand{
		orderID:  orderID,
		shipment: shipment,
		criteria: criteria,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ShopRatesCommand) Validate() error {
	return c.guard.Validate(ErrShopRatesCommandIsNotConstructed)
}

func (c ShopRatesCommand) OrderID() kernel.UUID { return c.orderID }
func (c ShopRatesCommand) Shipment() rating.ShipmentSpec { return c.shipment }
func (c ShopRatesCommand) Criteria() rating.Criteria { return c.criteria }
