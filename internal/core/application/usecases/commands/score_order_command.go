package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"
	"fulfillment/internal/pkg/guard"
)

var ErrScoreOrderCommandIsNotConstructed = errors.New(
	"ScoreOrderCommand must be created via NewScoreOrderCommand constructor",
)

// ScoreOrderCommand asks for the priority of an order to be computed from its
// factors. Scoring an order again recomputes its priority unless an operator
// override is active.
//
// Example:
//
//	shipDate := time.Now().Add(24 * time.Hour)
//	cmd, err := NewScoreOrderCommand(orderID, priority.Factors{
//	    Tier:       priority.Gold,
//	    OrderValue: kernel.MustMoney("1250.00"),
//	    ShipDate:   &shipDate,
//	})
//	result, err := handler.Handle(ctx, cmd)
type ScoreOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	factors priority.Factors

	guard guard.ConstructorGuard
}

// NewScoreOrderCommand creates a scoring request. The tier name is normalized.
func NewScoreOrderCommand(orderID kernel.UUID, factors priority.Factors) (ScoreOrderCommand, error) {
	if err := requireID("orderId", orderID); err != nil {
		return ScoreOrderCommand{}, err
	}

	factors.Tier = priority.NormalizeTier(string(factors.Tier))
	return ScoreOrderCommand{
		orderID: orderID,
		factors: factors,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ScoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrScoreOrderCommandIsNotConstructed)
}

func (c ScoreOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ScoreOrderCommand) Factors() priority.Factors {
	return c.factors
}
