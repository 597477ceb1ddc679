// Package services provides domain services that orchestrate business operations
// across multiple aggregates of the fulfillment system. It implements the
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PriorityScorer: scores an order from its factors
//   - Allocator: reserves inventory for an order line and backorders the shortfall
//   - PickSequencer: turns allocations into pick items in walk order
//   - CartonSelector: picks the smallest catalog carton that holds a set of items
//   - ShipmentDispatcher and LoadPlanner: place shipments on vehicle load plans
//   - RateSelector: selects a carrier quote by strategy and filters
package services
