// Package kernel provides the shared value objects of the fulfillment domain.
//
// The package includes:
//   - UUID: identifier value object used by every aggregate
//   - Quantity, Weight, Volume: non-negative decimals with 3 decimal places
//   - Money: non-negative decimal with 2 decimal places
//   - Dimensions: length, width and height of a carton or item (2 decimal places)
//   - BinLocation: zone/aisle/position address of a warehouse slot
//   - TimeWindow: half-open [start, end) interval with overnight normalization
//   - Clock: injectable time source for every time-sensitive operation
//
// All value objects are immutable. Arithmetic never uses floating point so that
// aggregated totals do not drift.
package kernel
