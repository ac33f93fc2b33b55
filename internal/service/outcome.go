package service

import (
	"fmt"
	"log"
)

// Outcome is the result of a call to an external provider: either a value or
// the failure that prevented one.
type Outcome[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// ExternalFailure records why the provider could not produce a value
func ExternalFailure[T any](err error) Outcome[T] {
	return Outcome[T]{err: fmt.Errorf("%w: %w", ErrExternalService, err)}
}

func (o Outcome[T]) IsOk() bool {
	return o.err == nil
}

func (o Outcome[T]) Err() error {
	return o.err
}

// Value returns the wrapped value, or the failure
func (o Outcome[T]) Value() (T, error) {
	return o.value, o.err
}

// OrElse returns the value on success and fallback otherwise
func (o Outcome[T]) OrElse(fallback T) T {
	if o.err != nil {
		return fallback
	}
	return o.value
}

// resolve logs a failed outcome before substituting fallback
func resolve[T any](component string, o Outcome[T], fallback T) T {
	if err := o.Err(); err != nil {
		log.Printf("[%s] using fallback: %v", component, err)
	}
	return o.OrElse(fallback)
}
