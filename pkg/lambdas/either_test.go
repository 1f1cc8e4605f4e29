package lambdas

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEither_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("left holds its value and refuses right", prop.ForAll(
		func(l string) bool {
			e, err := Left[string, int](l)
			if err != nil || !e.IsLeft() || e.IsRight() {
				return false
			}
			got, err := e.GetLeft()
			if err != nil || got != l {
				return false
			}
			_, err = e.GetRight()
			return errors.Is(err, ErrIllegalState)
		},
		gen.AnyString(),
	))

	properties.Property("right holds its value and refuses left", prop.ForAll(
		func(r int) bool {
			e, err := Right[string, int](r)
			if err != nil || e.IsLeft() || !e.IsRight() {
				return false
			}
			got, err := e.GetRight()
			if err != nil || got != r {
				return false
			}
			_, err = e.GetLeft()
			return errors.Is(err, ErrIllegalState)
		},
		gen.Int(),
	))

	properties.Property("swap twice is identity", prop.ForAll(
		func(r int) bool {
			e := MustRight[string, int](r)
			return e.Swap().Swap() == e && e.Swap().IsLeft()
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestLeft_RejectsNil(t *testing.T) {
	t.Parallel()

	_, err := Left[error, int](nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var p *int
	_, err = Left[*int, int](p)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRight_RejectsNil(t *testing.T) {
	t.Parallel()

	_, err := Right[error, []byte](nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Right[error, map[string]int](nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Right[error, func()](nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRight_AcceptsZeroValues(t *testing.T) {
	t.Parallel()

	e, err := Right[error, int](0)
	require.NoError(t, err)
	assert.True(t, e.IsRight())

	e2, err := Right[error, string]("")
	require.NoError(t, err)
	assert.True(t, e2.IsRight())
}

func TestMustLeft_PanicsWithFault(t *testing.T) {
	t.Parallel()

	defer func() {
		v := recover()
		f, ok := v.(*Fault)
		require.True(t, ok, "expected *Fault, got %T", v)
		assert.ErrorIs(t, f, ErrInvalidArgument)
	}()
	MustLeft[error, int](nil)
}

func TestEither_ZeroValueIsNeither(t *testing.T) {
	t.Parallel()
	var e Either[string, int]

	assert.False(t, e.IsLeft())
	assert.False(t, e.IsRight())
	_, err := e.GetLeft()
	assert.ErrorIs(t, err, ErrIllegalState)
	_, err = e.GetRight()
	assert.ErrorIs(t, err, ErrIllegalState)
	assert.Equal(t, "Either()", e.String())
}

func TestEither_GetWrongSideMessage(t *testing.T) {
	t.Parallel()

	_, err := MustRight[string, int](1).GetLeft()
	assert.EqualError(t, err, "either is of type right: illegal state")

	_, err = MustLeft[string, int]("x").GetRight()
	assert.EqualError(t, err, "either is of type left: illegal state")
}

func TestEither_Equality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MustLeft[string, int]("a"), MustLeft[string, int]("a"))
	assert.NotEqual(t, MustLeft[string, int]("a"), MustLeft[string, int]("b"))
	assert.NotEqual(t, MustRight[int, int](1), MustLeft[int, int](1))
}

func TestFold(t *testing.T) {
	t.Parallel()
	onLeft := func(s string) string { return "L:" + s }
	onRight := func(i int) string { return "R" }

	assert.Equal(t, "L:x", Fold(MustLeft[string, int]("x"), onLeft, onRight))
	assert.Equal(t, "R", Fold(MustRight[string, int](3), onLeft, onRight))
	assert.Equal(t, "", Fold(Either[string, int]{}, onLeft, onRight))
}

func TestEither_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Left(x)", MustLeft[string, int]("x").String())
	assert.Equal(t, "Right(3)", MustRight[string, int](3).String())
}
