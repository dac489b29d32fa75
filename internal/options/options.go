// Package options implements generic functional options.
//
// Fit settings, solver settings and report settings are all configured with
// Option values built by New or NoError and applied in order by Apply.
package options

import "fmt"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a function.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
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

// Combine returns an option that applies opts in order and stops at the
// first error.
func Combine[T any](opts ...Option[T]) *Func[T] {
	return New(func(target T) error {
		return Apply(target, opts...)
	})
}

// Apply applies opts to target in order. Nil options are skipped. The first
// failure stops the sequence and is returned wrapped with its position.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}

	return nil
}
