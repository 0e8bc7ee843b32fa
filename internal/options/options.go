// Package options implements the functional options shared by histograms, axes and storages.
package options

import "go.uber.org/multierr"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may fail.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// ApplyAll applies every option and returns all failures combined.
//
// Construction code uses it so that one call reports every invalid setting.
func ApplyAll[T any](target T, opts ...Option[T]) error {
	var errs error
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		errs = multierr.Append(errs, opt.apply(target))
	}

	return errs
}
