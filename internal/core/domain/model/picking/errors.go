package picking

import "errors"

var (
	// ErrExceptionOpen is returned when picking an item that has an unresolved exception.
	ErrExceptionOpen = errors.New("item has an open pick exception")
	// ErrItemNotFound is returned when the item is not part of the list.
	ErrItemNotFound = errors.New("pick list item not found")
	// ErrItemAlreadyPicked is returned when picking an item in a terminal pick state.
	ErrItemAlreadyPicked = errors.New("pick list item already picked")
	// ErrExceptionNotFound is returned when the exception is not part of the list.
	ErrExceptionNotFound = errors.New("pick exception not found")
	// ErrConfirmationConflict is returned when a confirmation id is replayed for a different item.
	ErrConfirmationConflict = errors.New("confirmation id already used for another item")
)
