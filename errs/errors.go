// Package errs defines the sentinel errors returned by histo packages.
//
// Callers match them with errors.Is; the packages wrap them with context using
// fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrInvalidAxis is returned when an axis is constructed with invalid parameters,
	// e.g. a non-positive bin count, non-monotonic edges or duplicate categories.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrInvalidArgument is returned when a value cannot be represented in an axis domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented is returned when an axis does not provide the requested capability.
	ErrNotImplemented = errors.New("not implemented")

	// ErrDimensionMismatch is returned when the number of values or indices does not
	// match the number of axes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfRange is returned when a bin index addresses no stored cell.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrIncompatibleAxes is returned when two histograms with different axes are combined.
	ErrIncompatibleAxes = errors.New("incompatible axes")

	// ErrInvalidConfig is returned when histogram options are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)
