// Package adapt turns fallible functions into total ones.
//
// - ToOptional: failure becomes mo.None, the cause is dropped
// - ToEither: failure becomes a left carrying the cause
// - Silence/SilenceConsumer/SilenceStatement: failure is re-raised as a
//   panic with *lambdas.Fault; nothing is swallowed
// - ToThrowingFunction: a fallible procedure viewed as a fallible function
//   returning lambdas.Void
//
// "Failure" covers both a returned error and a panic raised by the
// adapted function.
package adapt
