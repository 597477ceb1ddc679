package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/loading"
)

// Placement is a shipment that was added to a plan.
type Placement struct {
	Shipment loading.Shipment
	Plan     *loading.LoadPlan
}

// Unplaced is a shipment no plan accepted, with the reason.
type Unplaced struct {
	Shipment loading.Shipment
	Reason   loading.RejectionReason
}

// PlanningResult is the outcome of one planning run.
type PlanningResult struct {
	Placements []Placement
	Unplaced   []Unplaced
}

// LoadPlanner distributes shipments over open load plans greedily: shipments
// are taken in input order and each goes to its best-fitting plan at that
// moment. It does not look ahead.
type LoadPlanner struct {
	dispatcher ShipmentDispatcher
}

func NewLoadPlanner() LoadPlanner {
	return LoadPlanner{dispatcher: NewShipmentDispatcher()}
}

// Plan places shipments onto plans, mutating the plans it places on.
func (p LoadPlanner) Plan(shipments []loading.Shipment, plans []*loading.LoadPlan) (PlanningResult, error) {
	result := PlanningResult{
		Placements: make([]Placement, 0, len(shipments)),
		Unplaced:   make([]Unplaced, 0),
	}

	for _, s := range shipments {
		plan, err := p.dispatcher.Dispatch(s, plans)
		if err != nil {
			var rejection *loading.RejectionError
			if !errors.As(err, &rejection) {
				return PlanningResult{}, err
			}
			result.Unplaced = append(result.Unplaced, Unplaced{Shipment: s, Reason: rejection.Reason})
			continue
		}
		result.Placements = append(result.Placements, Placement{Shipment: s, Plan: plan})
	}

	return result, nil
}
