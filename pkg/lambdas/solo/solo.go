package solo

import (
	"errors"

	"github.com/ib-77/lambdas/pkg/lambdas"
)

// Succeed wraps v as a right value. A nil v becomes a left carrying
// lambdas.ErrInvalidArgument.
func Succeed[T any](v T) lambdas.Result[T] {
	r, err := lambdas.Right[error, T](v)
	if err != nil {
		return Fail[T](err)
	}
	return r
}

// Fail wraps err as a left value. A nil err is itself invalid and is
// replaced by an error carrying lambdas.ErrInvalidArgument.
func Fail[T any](err error) lambdas.Result[T] {
	r, lerr := lambdas.Left[error, T](err)
	if lerr != nil {
		return lambdas.MustLeft[error, T](lerr)
	}
	return r
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) lambdas.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input lambdas.Result[T], validate func(in T) (valid bool, errMsg string)) lambdas.Result[T] {
	if v, err := input.GetRight(); err == nil {
		if isValid, errMsg := validate(v); isValid {
			return input
		} else {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](input lambdas.Result[In],
	onSuccess func(r In) lambdas.Result[Out]) lambdas.Result[Out] {

	v, err := input.GetRight()
	if err != nil {
		return Fail[Out](leftOf(input))
	}
	return onSuccess(v)
}

func Map[In any, Out any](input lambdas.Result[In], onSuccess func(r In) Out) lambdas.Result[Out] {
	v, err := input.GetRight()
	if err != nil {
		return Fail[Out](leftOf(input))
	}
	return Succeed(onSuccess(v))
}

// Try calls onTryExecute on a right value. Its error, or a panic it
// raises, turns the result into a left.
func Try[In any, Out any](input lambdas.Result[In],
	onTryExecute lambdas.ThrowingFunction[In, Out]) lambdas.Result[Out] {

	v, err := input.GetRight()
	if err != nil {
		return Fail[Out](leftOf(input))
	}

	var out Out
	if err := lambdas.Try(func() (e error) {
		out, e = onTryExecute(v)
		return e
	}); err != nil {
		return Fail[Out](err)
	}
	return Succeed(out)
}

func Tee[T any](input lambdas.Result[T], onSuccess func(r T)) lambdas.Result[T] {
	if v, err := input.GetRight(); err == nil {
		onSuccess(v)
	}
	return input
}

func TeeIf[T any](input lambdas.Result[T],
	condition func(r T) bool,
	onSuccessAndCondition func(r T)) lambdas.Result[T] {

	if v, err := input.GetRight(); err == nil {
		if condition(v) {
			onSuccessAndCondition(v)
		}
	}
	return input
}

func DoubleTee[T any](input lambdas.Result[T],
	onSuccess func(r T),
	onError func(err error)) lambdas.Result[T] {

	if v, err := input.GetRight(); err == nil {
		onSuccess(v)
	} else {
		onError(leftOf(input))
	}
	return input
}

func FailOnError[T any](input lambdas.Result[T], maybeErr func(in T) error) lambdas.Result[T] {
	if v, err := input.GetRight(); err == nil {
		if err := maybeErr(v); err != nil {
			return Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](input lambdas.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if v, err := input.GetRight(); err == nil {
		return onSuccess(v)
	}
	return onError(leftOf(input))
}

// leftOf returns the error carried by a left result. For the zero Result,
// which is neither side, it returns the lambdas.ErrIllegalState from GetLeft.
func leftOf[T any](r lambdas.Result[T]) error {
	l, err := r.GetLeft()
	if err != nil {
		return err
	}
	return l
}
