// Package solo contains single-value, synchronous railway primitives that
// operate on lambdas.Result[T], an Either whose left side is an error.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform right values
// - Try: call a fallible function and convert its error or panic to a left
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via right/left handlers
//
// A left value is never inspected by the functions passed to these
// operations; it travels unchanged to the end of the track.
package solo
