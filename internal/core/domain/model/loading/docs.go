// Package loading provides the aggregates of the outbound yard: the LoadPlan
// that assembles shipments onto one vehicle and the DockSchedule that reserves
// a loading dock for a plan.
//
// Key business rules:
//   - Assigning a shipment never pushes total weight or volume above capacity;
//     only an explicit override can
//   - Totals and utilization are always recomputed from the owned shipments
//   - Schedules at the same dock that are not cancelled or no-show never overlap
package loading
