package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
)

// ShipmentDispatcher is a domain service responsible for finding the load plan
// that fits a shipment best and assigning the shipment to it.
//
// Business rules:
//   - A shipment already on any of the plans is not placed again
//   - Only plans that accept the shipment within capacity are considered
//   - The best plan leaves the least weight capacity free after placement
//   - Ties go to the plan that comes first
//   - Assignment never exceeds a plan's weight or volume capacity
//
// Example usage:
//
//	dispatcher := NewShipmentDispatcher()
//	plan, err := dispatcher.Dispatch(shipment, openPlans)
//	var rejection *loading.RejectionError
//	if errors.As(err, &rejection) {
//	    // no plan accepted the shipment, rejection.Reason says why
//	    return
//	}
type ShipmentDispatcher struct{}

// NewShipmentDispatcher creates a new ShipmentDispatcher instance.
func NewShipmentDispatcher() ShipmentDispatcher {
	return ShipmentDispatcher{}
}

// Dispatch finds the best plan for shipment and adds the shipment to it.
//
// Returns:
//   - *loading.LoadPlan: the plan the shipment was added to
//   - error: *loading.RejectionError when no plan accepts the shipment, or
//     validation errors
func (d ShipmentDispatcher) Dispatch(shipment loading.Shipment, plans []*loading.LoadPlan) (*loading.LoadPlan, error) {
	if err := shipment.ID().Validate(); err != nil {
		return nil, err
	}

	bestPlan, err := d.findBestPlan(shipment, plans)
	if err != nil {
		return nil, err
	}

	if err = bestPlan.Add(shipment); err != nil {
		return nil, err
	}

	return bestPlan, nil
}

// findBestPlan evaluates every plan and keeps the tightest fit.
//
// A shipment held by any plan is already_assigned. Otherwise, when no plan
// accepts it, the reported reason is, in this order: weight_capacity_exceeded,
// volume_capacity_exceeded, plan_not_open.
func (d ShipmentDispatcher) findBestPlan(shipment loading.Shipment, plans []*loading.LoadPlan) (*loading.LoadPlan, error) {
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.Contains(shipment.ID()) {
			return nil, &loading.RejectionError{Reason: loading.AlreadyAssigned}
		}
	}

	var (
		bestPlan      *loading.LoadPlan
		bestRemaining kernel.Weight
		rejected      = make(map[loading.RejectionReason]bool)
	)

	for _, p := range plans {
		if reason := p.Evaluate(shipment); reason != "" {
			rejected[reason] = true
			continue
		}

		remaining := p.RemainingWeight().Sub(shipment.Weight())
		if bestPlan == nil || remaining.LessThan(bestRemaining) {
			bestPlan = p
			bestRemaining = remaining
		}
	}

	if bestPlan != nil {
		return bestPlan, nil
	}

	for _, reason := range []loading.RejectionReason{
		loading.WeightCapacityExceeded,
		loading.VolumeCapacityExceeded,
	} {
		if rejected[reason] {
			return nil, &loading.RejectionError{Reason: reason}
		}
	}
	return nil, &loading.RejectionError{Reason: loading.PlanNotOpen}
}
