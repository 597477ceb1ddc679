package packing

import "errors"

var (
	// ErrToleranceExceeded is returned when shipping a carton whose last
	// verification warned or failed and was not overridden.
	ErrToleranceExceeded = errors.New("carton tolerance exceeded")
	// ErrNoCartonFits is returned by carton selection when no active type fits.
	ErrNoCartonFits = errors.New("no carton type fits")
	// ErrRepackRequired is returned when shipping a carton flagged by a quality check.
	ErrRepackRequired = errors.New("carton requires repack")
	// ErrReinspectionRequired is returned when shipping a carton whose last
	// quality check asks for another inspection.
	ErrReinspectionRequired = errors.New("carton requires reinspection")
	// ErrNotVerified is returned when shipping a carton that was never verified.
	ErrNotVerified = errors.New("carton is not verified")
)
