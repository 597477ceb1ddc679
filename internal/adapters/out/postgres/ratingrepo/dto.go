// Package ratingrepo persists rate-shopping results. The shipment, the quotes
// and the criteria are snapshots, stored as jsonb.
package ratingrepo

import (
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ShoppingResultDTO is the row of shopping_results.
type ShoppingResultDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID       `gorm:"type:uuid;index"`
	Shipment            datatypes.JSON  `gorm:"type:jsonb"`
	Quotes              datatypes.JSON  `gorm:"type:jsonb"`
	Criteria            datatypes.JSON  `gorm:"type:jsonb"`
	SelectedCarrier     string
	SelectedService     string
	SelectedCost        decimal.Decimal `gorm:"type:numeric(12,2)"`
	SelectedTransitDays int
	QuotedAt            time.Time
	ExpiresAt           time.Time
}

func (ShoppingResultDTO) TableName() string {
	return "shopping_results"
}

type shipmentJSON struct {
	Weight      decimal.Decimal `json:"weight"`
	Volume      decimal.Decimal `json:"volume"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
}

type quoteJSON struct {
	Carrier     string          `json:"carrier"`
	Service     string          `json:"service"`
	Cost        decimal.Decimal `json:"cost"`
	TransitDays int             `json:"transitDays"`
}

type criteriaJSON struct {
	Strategy       string           `json:"strategy"`
	MaxTransitDays *int             `json:"maxTransitDays,omitempty"`
	MaxCost        *decimal.Decimal `json:"maxCost,omitempty"`
}

func fromDomain(r *rating.ShoppingResult) (ShoppingResultDTO, error) {
	s := r.Shipment()
	shipment, shipmentErr := pgmap.JSON(shipmentJSON{
		Weight:      s.Weight.Decimal(),
		Volume:      s.Volume.Decimal(),
		Origin:      s.Origin,
		Destination: s.Destination,
	})

	quotes := make([]quoteJSON, 0, len(r.Quotes()))
	for _, q := range r.Quotes() {
		quotes = append(quotes, quoteFromDomain(q))
	}
	quotesRaw, quotesErr := pgmap.JSON(quotes)

	c := r.Criteria()
	criteria := criteriaJSON{Strategy: c.Strategy.String(), MaxTransitDays: c.MaxTransitDays}
	if c.MaxCost != nil {
		cost := c.MaxCost.Decimal()
		criteria.MaxCost = &cost
	}
	criteriaRaw, criteriaErr := pgmap.JSON(criteria)

	if err := errors.Join(shipmentErr, quotesErr, criteriaErr); err != nil {
		return ShoppingResultDTO{}, err
	}

	selected := r.Selected()
	return ShoppingResultDTO{
		ID:                  r.ID().Bytes(),
		OrderID:             r.OrderID().Bytes(),
		Shipment:            shipment,
		Quotes:              quotesRaw,
		Criteria:            criteriaRaw,
		SelectedCarrier:     selected.Carrier,
		SelectedService:     selected.Service,
		SelectedCost:        selected.Cost.Decimal(),
		SelectedTransitDays: selected.TransitDays,
		QuotedAt:            r.QuotedAt(),
		ExpiresAt:           r.ExpiresAt(),
	}, nil
}

func quoteFromDomain(q rating.Quote) quoteJSON {
	return quoteJSON{Carrier: q.Carrier, Service: q.Service, Cost: q.Cost.Decimal(), TransitDays: q.TransitDays}
}

func (q quoteJSON) toDomain() (rating.Quote, error) {
	cost, err := kernel.NewMoney(q.Cost)
	if err != nil {
		return rating.Quote{}, err
	}
	return rating.NewQuote(q.Carrier, q.Service, cost, q.TransitDays)
}

func toDomain(dto ShoppingResultDTO) (*rating.ShoppingResult, error) {
	id, idErr := pgmap.ID(dto.ID)
	orderID, orderErr := pgmap.ID(dto.OrderID)
	shipment, shipmentErr := shipmentToDomain(dto.Shipment)
	quotes, quotesErr := quotesToDomain(dto.Quotes)
	criteria, criteriaErr := criteriaToDomain(dto.Criteria)
	selected, selectedErr := quoteJSON{
		Carrier:     dto.SelectedCarrier,
		Service:     dto.SelectedService,
		Cost:        dto.SelectedCost,
		TransitDays: dto.SelectedTransitDays,
	}.toDomain()
	if err := errors.Join(idErr, orderErr, shipmentErr, quotesErr, criteriaErr, selectedErr); err != nil {
		return nil, err
	}

	return rating.RestoreShoppingResult(id, orderID, shipment, quotes, criteria, selected, dto.QuotedAt, dto.ExpiresAt)
}

func shipmentToDomain(raw datatypes.JSON) (rating.ShipmentSpec, error) {
	decoded, err := pgmap.FromJSON[shipmentJSON](raw)
	if err != nil || decoded == nil {
		return rating.ShipmentSpec{}, err
	}
	weight, weightErr := pgmap.Quantity(decoded.Weight)
	volume, volumeErr := pgmap.Quantity(decoded.Volume)
	if err = errors.Join(weightErr, volumeErr); err != nil {
		return rating.ShipmentSpec{}, err
	}
	return rating.ShipmentSpec{
		Weight:      weight,
		Volume:      volume,
		Origin:      decoded.Origin,
		Destination: decoded.Destination,
	}, nil
}

func quotesToDomain(raw datatypes.JSON) ([]rating.Quote, error) {
	decoded, err := pgmap.FromJSON[[]quoteJSON](raw)
	if err != nil || decoded == nil {
		return nil, err
	}
	quotes := make([]rating.Quote, 0, len(*decoded))
	for _, q := range *decoded {
		quote, err := q.toDomain()
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func criteriaToDomain(raw datatypes.JSON) (rating.Criteria, error) {
	decoded, err := pgmap.FromJSON[criteriaJSON](raw)
	if err != nil || decoded == nil {
		return rating.Criteria{}, err
	}
	strategy, err := rating.ParseStrategy(decoded.Strategy)
	if err != nil {
		return rating.Criteria{}, err
	}
	criteria := rating.Criteria{Strategy: strategy, MaxTransitDays: decoded.MaxTransitDays}
	if decoded.MaxCost != nil {
		cost, err := kernel.NewMoney(*decoded.MaxCost)
		if err != nil {
			return rating.Criteria{}, err
		}
		criteria.MaxCost = &cost
	}
	return criteria, nil
}
