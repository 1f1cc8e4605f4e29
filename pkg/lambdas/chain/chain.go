package chain

import (
	"github.com/ib-77/lambdas/pkg/lambdas"
	"github.com/ib-77/lambdas/pkg/lambdas/adapt"
	"github.com/ib-77/lambdas/pkg/lambdas/solo"
)

// Chain wraps a lambdas.Result to enable fluent chaining
type Chain[T any] struct {
	result lambdas.Result[T]
}

// Start creates a new chain from a lambdas.Result
func Start[T any](result lambdas.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a right value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: solo.Succeed(value)}
}

// FromFunc starts a chain by calling a fallible function on input
func FromFunc[In, T any](input In, f lambdas.ThrowingFunction[In, T]) *Chain[T] {
	return &Chain[T]{result: adapt.ToEither(f)(input)}
}

// Result returns the underlying lambdas.Result
func (c *Chain[T]) Result() lambdas.Result[T] {
	return c.result
}

// Then chains a function that returns lambdas.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) lambdas.Result[U]) *Chain[U] {
	return &Chain[U]{result: solo.Switch(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess lambdas.ThrowingFunction[T, U]) *Chain[U] {
	return &Chain[U]{result: solo.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: solo.Tee(c.result, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
