package lambdas

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidArgument is returned when a required value is nil.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalState is returned when a value is read from the wrong side of an Either.
	ErrIllegalState = errors.New("illegal state")
)

// Fault is the value a silenced function panics with. It carries the
// failure that the function's signature no longer declares.
type Fault struct {
	Cause error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("undeclared fault: %v", f.Cause)
}

func (f *Fault) Unwrap() error {
	return f.Cause
}

// PanicError wraps a recovered panic value together with the goroutine
// stack trace captured at the point of recovery.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value when it is an error, so that a panic
// raised with a *Fault or a sentinel can still be matched by errors.Is.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func newPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// IsFault reports whether err (or any error in its chain) is a *Fault.
func IsFault(err error) bool {
	if err == nil {
		return false
	}
	var f *Fault
	return errors.As(err, &f)
}
