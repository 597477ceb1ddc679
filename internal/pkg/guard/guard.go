// Package guard provides ConstructorGuard, a marker that lets aggregates,
// commands and queries tell a value built by its constructor apart from a zero
// value created with a struct literal.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types that must only be created through their
// New*/Restore* functions. The zero value is "not constructed".
//
// Example:
//
//	var ErrCartonNotConstructed = errors.New("PackedCarton must be created via NewPackedCarton")
//
//	type PackedCarton struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (c *PackedCarton) Validate() error {
//	    return c.guard.Validate(ErrCartonNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from the
// constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
