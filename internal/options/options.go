package options

import (
	"fmt"
)

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
	name() string
}

// Func is a generic functional option that wraps a function.
// It implements the Option interface for any type T.
type Func[T any] struct {
	optName   string
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// name implements the Option interface.
func (f *Func[T]) name() string {
	return f.optName
}

// New creates a new named functional option from a function that may fail.
// The name is used to annotate errors returned by Apply.
func New[T any](name string, fn func(T) error) *Func[T] {
	return &Func[T]{optName: name, applyFunc: fn}
}

// NoError creates a named functional option from a function that cannot fail.
func NoError[T any](name string, fn func(T)) *Func[T] {
	return &Func[T]{
		optName: name,
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies options to target in order and stops at the first error,
// which is wrapped with the option name. Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("%s: %w", opt.name(), err)
		}
	}

	return nil
}
