package allocation

import "errors"

var (
	// ErrInsufficientInventory is returned by the inventory collaborator when a
	// record no longer holds the requested quantity. The allocator recovers from
	// it by trying the next record and finally by backordering.
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrAllocationExpired is returned when mutating an allocation whose hold expired.
	ErrAllocationExpired = errors.New("allocation expired")

	// ErrAllocationNotAvailable is returned when mutating a cancelled or fully
	// consumed allocation.
	ErrAllocationNotAvailable = errors.New("allocation not available")
)
