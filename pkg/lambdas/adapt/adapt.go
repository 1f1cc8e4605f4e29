package adapt

import (
	"github.com/samber/mo"

	"github.com/ib-77/lambdas/pkg/lambdas"
)

// ToOptional makes f total by returning mo.None when it fails. A nil
// result is absent as well.
func ToOptional[T, R any](f lambdas.ThrowingFunction[T, R]) func(T) mo.Option[R] {
	return func(t T) mo.Option[R] {
		r, err := call(f, t)
		if err != nil || lambdas.IsNil(r) {
			return mo.None[R]()
		}
		return mo.Some(r)
	}
}

// ToEither makes f total by returning a left holding the failure. A nil
// result, or a typed-nil error, is reported as a left carrying
// lambdas.ErrInvalidArgument.
func ToEither[T, R any](f lambdas.ThrowingFunction[T, R]) func(T) lambdas.Result[R] {
	return func(t T) lambdas.Result[R] {
		r, err := call(f, t)
		if err != nil {
			return left[R](err)
		}
		res, err := lambdas.Right[error, R](r)
		if err != nil {
			return left[R](err)
		}
		return res
	}
}

// Silence removes the error from f's signature. When f fails, the returned
// function panics with a *lambdas.Fault whose Cause is the failure.
func Silence[T, R any](f lambdas.ThrowingFunction[T, R]) func(T) R {
	return func(t T) R {
		r, err := call(f, t)
		if err != nil {
			panic(&lambdas.Fault{Cause: err})
		}
		return r
	}
}

// SilenceConsumer is Silence for procedures.
func SilenceConsumer[T any](c lambdas.ThrowingConsumer[T]) func(T) {
	silenced := Silence(ToThrowingFunction(c))
	return func(t T) {
		silenced(t)
	}
}

// SilenceStatement is Silence for procedures without input.
func SilenceStatement(s lambdas.ThrowingStatement) lambdas.Statement {
	silenced := SilenceConsumer(func(lambdas.Void) error { return s() })
	return func() {
		silenced(lambdas.Void{})
	}
}

// ToThrowingFunction views c as a function returning lambdas.Void.
func ToThrowingFunction[T any](c lambdas.ThrowingConsumer[T]) lambdas.ThrowingFunction[T, lambdas.Void] {
	return func(t T) (lambdas.Void, error) {
		return lambdas.Void{}, c(t)
	}
}

// left wraps err, replacing an error that is itself nil with the
// lambdas.ErrInvalidArgument raised by rejecting it.
func left[R any](err error) lambdas.Result[R] {
	l, lerr := lambdas.Left[error, R](err)
	if lerr != nil {
		return lambdas.MustLeft[error, R](lerr)
	}
	return l
}

// call runs f, turning a panic into a *lambdas.PanicError.
func call[T, R any](f lambdas.ThrowingFunction[T, R], t T) (r R, err error) {
	err = lambdas.Try(func() (e error) {
		r, e = f(t)
		return e
	})
	return r, err
}
