// Package picking provides the PickList aggregate: the pick work of one picker
// or wave, its items, the append-only pick confirmations and the pick
// exceptions raised while walking the list.
//
// Key business rules:
//   - Items are built 1:1 from allocations and numbered 1..n in walk order
//   - A pick is idempotent by confirmation id; a replay returns the original outcome
//   - An item with an unresolved exception cannot be picked
//   - Picked and short picked items are terminal
//   - The list completes exactly when every item is terminal
package picking
