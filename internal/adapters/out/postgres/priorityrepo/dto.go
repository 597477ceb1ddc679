// Package priorityrepo persists order priorities. The factors and their
// contributions are stored as a JSON snapshot next to the score.
package priorityrepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderPriorityDTO is the row of order_priorities.
type OrderPriorityDTO struct {
	OrderID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Score          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Level          int             `gorm:"type:smallint"`
	Factors        datatypes.JSON  `gorm:"type:jsonb"`
	Contributions  datatypes.JSON  `gorm:"type:jsonb"`
	ComputedAt     time.Time
	ManualOverride bool
	OverrideReason string
	OverriddenBy   string
}

func (OrderPriorityDTO) TableName() string {
	return "order_priorities"
}

type factorsJSON struct {
	Tier       string            `json:"tier"`
	OrderValue decimal.Decimal   `json:"orderValue"`
	ShipDate   *time.Time        `json:"shipDate,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

type contributionsJSON struct {
	Base    decimal.Decimal `json:"base"`
	Tier    decimal.Decimal `json:"tier"`
	Value   decimal.Decimal `json:"value"`
	Urgency decimal.Decimal `json:"urgency"`
}

func fromDomain(p *priority.OrderPriority) (OrderPriorityDTO, error) {
	f := p.Factors()
	factors, err := pgmap.JSON(factorsJSON{
		Tier:       string(f.Tier),
		OrderValue: f.OrderValue.Decimal(),
		ShipDate:   f.ShipDate,
		Extra:      f.Extra,
	})
	if err != nil {
		return OrderPriorityDTO{}, err
	}

	c := p.Contributions()
	contributions, err := pgmap.JSON(contributionsJSON{Base: c.Base, Tier: c.Tier, Value: c.Value, Urgency: c.Urgency})
	if err != nil {
		return OrderPriorityDTO{}, err
	}

	return OrderPriorityDTO{
		OrderID:        p.OrderID().Bytes(),
		Score:          p.Score(),
		Level:          int(p.Level()),
		Factors:        factors,
		Contributions:  contributions,
		ComputedAt:     p.ComputedAt(),
		ManualOverride: p.HasManualOverride(),
		OverrideReason: p.OverrideReason(),
		OverriddenBy:   p.OverriddenBy(),
	}, nil
}

func toDomain(dto OrderPriorityDTO) (*priority.OrderPriority, error) {
	orderID, err := pgmap.ID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	f, err := pgmap.FromJSON[factorsJSON](dto.Factors)
	if err != nil {
		return nil, err
	}
	var factors priority.Factors
	if f != nil {
		value, moneyErr := kernel.NewMoney(f.OrderValue)
		if moneyErr != nil {
			return nil, moneyErr
		}
		factors = priority.Factors{Tier: priority.CustomerTier(f.Tier), OrderValue: value, ShipDate: f.ShipDate, Extra: f.Extra}
	}

	c, err := pgmap.FromJSON[contributionsJSON](dto.Contributions)
	if err != nil {
		return nil, err
	}
	var contributions priority.Contributions
	if c != nil {
		contributions = priority.Contributions{Base: c.Base, Tier: c.Tier, Value: c.Value, Urgency: c.Urgency}
	}

	return priority.RestoreOrderPriority(
		orderID,
		dto.Score,
		priority.Level(dto.Level),
		contributions,
		factors,
		dto.ComputedAt,
		dto.ManualOverride,
		dto.OverrideReason,
		dto.OverriddenBy,
	)
}
