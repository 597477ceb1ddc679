// Package packing provides the carton catalog (CartonType) and the
// PackedCarton aggregate with its physical weight and dimension verifications
// and quality checks.
//
// Key business rules:
//   - A carton type fits an item under any of the six axis orientations
//   - A verification passes iff |actual-expected|/expected × 100 <= tolerance,
//     warns up to twice the tolerance and fails beyond
//   - A failed verification blocks shipping until re-pack or inspector override
//   - A critical quality failure forces re-pack and re-inspection
package packing
