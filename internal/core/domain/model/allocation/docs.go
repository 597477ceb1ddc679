// Package allocation provides the aggregates of the allocation stage: the
// time-bounded Allocation of inventory against an order line and the BackOrder
// that tracks the unreserved remainder.
//
// Key business rules:
//   - 0 <= picked quantity <= allocated quantity at every observable state
//   - UpdatePickedQuantity is the only mutator of the picked quantity
//   - Expired and cancelled allocations reject every further mutation
//   - Only unpicked allocations past their expiry can expire
//   - fulfilled quantity <= backordered quantity; a fulfilled backorder is final
package allocation
