// Package priority provides the OrderPriority aggregate: the persisted urgency
// assessment of a sales order.
//
// The package includes:
//   - OrderPriority: score, level and the snapshot of the factors it was computed from
//   - Level: the step function over the score (low/normal/high/urgent/critical)
//   - Factors: the typed inputs of a scoring run (customer tier, order value, ship date)
//
// Key business rules:
//   - The level is a deterministic function of the score
//   - While a manual override is active, recomputation leaves the priority untouched
//   - Only an explicit operator action clears an override
package priority
