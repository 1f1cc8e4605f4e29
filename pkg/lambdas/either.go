package lambdas

import (
	"fmt"
)

// Either holds exactly one of a left value (conventionally a failure) or a
// right value (conventionally a success). Build it with Left or Right; the
// zero Either is neither left nor right.
type Either[L, R any] struct {
	left    L
	right   R
	isLeft  bool
	isRight bool
}

// Result is an Either whose left side is an error.
type Result[T any] = Either[error, T]

// Left builds a left Either, or returns ErrInvalidArgument when l is nil.
func Left[L, R any](l L) (Either[L, R], error) {
	if IsNil(l) {
		return Either[L, R]{}, fmt.Errorf("left value: %w", ErrInvalidArgument)
	}
	return Either[L, R]{
		left:   l,
		isLeft: true,
	}, nil
}

// Right builds a right Either, or returns ErrInvalidArgument when r is nil.
func Right[L, R any](r R) (Either[L, R], error) {
	if IsNil(r) {
		return Either[L, R]{}, fmt.Errorf("right value: %w", ErrInvalidArgument)
	}
	return Either[L, R]{
		right:   r,
		isRight: true,
	}, nil
}

// MustLeft is like Left but panics with a *Fault when l is nil.
func MustLeft[L, R any](l L) Either[L, R] {
	e, err := Left[L, R](l)
	if err != nil {
		panic(&Fault{Cause: err})
	}
	return e
}

// MustRight is like Right but panics with a *Fault when r is nil.
func MustRight[L, R any](r R) Either[L, R] {
	e, err := Right[L, R](r)
	if err != nil {
		panic(&Fault{Cause: err})
	}
	return e
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left value, or ErrIllegalState if e is not left.
func (e Either[L, R]) GetLeft() (L, error) {
	if !e.isLeft {
		var zero L
		return zero, fmt.Errorf("either is of type right: %w", ErrIllegalState)
	}
	return e.left, nil
}

// GetRight returns the right value, or ErrIllegalState if e is not right.
func (e Either[L, R]) GetRight() (R, error) {
	if !e.isRight {
		var zero R
		return zero, fmt.Errorf("either is of type left: %w", ErrIllegalState)
	}
	return e.right, nil
}

func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{
		left:    e.right,
		right:   e.left,
		isLeft:  e.isRight,
		isRight: e.isLeft,
	}
}

func (e Either[L, R]) String() string {
	switch {
	case e.isLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	case e.isRight:
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return "Either()"
}

// Fold reduces e to a single value with one handler per side. The zero
// Either is reported to neither handler and folds to the zero Out.
func Fold[L, R, Out any](e Either[L, R], onLeft func(L) Out, onRight func(R) Out) Out {
	if e.isLeft {
		return onLeft(e.left)
	}
	if e.isRight {
		return onRight(e.right)
	}
	var zero Out
	return zero
}
