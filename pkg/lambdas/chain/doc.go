// Package chain provides a fluent wrapper around lambdas.Result[T] for
// building synchronous railway chains from solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a fallible function and convert its failure to a left
// - Map: transform the right value (T -> U)
// - Ensure: run side effects on the right value without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
