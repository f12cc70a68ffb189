// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseInt(s string) Either[string, int] {
	i, err := strconv.Atoi(s)
	if err != nil {
		return Left[string, int]("not an int: " + s)
	}
	return Right[string](i)
}

func TestBind(t *testing.T) {
	t.Run("sequences successful steps", func(t *testing.T) {
		e := Bind(parseInt("2"), func(i int) Either[string, int] {
			return Right[string](i * 10)
		})

		v, ok := e.Right()
		require.True(t, ok)
		assert.Equal(t, 20, v)
	})

	t.Run("short-circuits on the first failure", func(t *testing.T) {
		called := false
		e := Bind(parseInt("x"), func(i int) Either[string, int] {
			called = true
			return Right[string](i)
		})

		assert.False(t, called)
		l, ok := e.Left()
		require.True(t, ok)
		assert.Equal(t, "not an int: x", l)
	})
}

func TestBindContext(t *testing.T) {
	t.Run("passes the context to the step", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")

		e, err := BindContext(ctx, parseInt("1"), func(ctx context.Context, i int) (Either[string, string], error) {
			return Right[string](ctx.Value(key{}).(string)), nil
		})
		require.NoError(t, err)

		v, ok := e.Right()
		require.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("does not call the step on failure", func(t *testing.T) {
		e, err := BindContext(context.Background(), parseInt("x"), func(ctx context.Context, i int) (Either[string, int], error) {
			return Either[string, int]{}, errors.New("should not be called")
		})
		require.NoError(t, err)
		assert.True(t, e.IsLeft())
	})

	t.Run("propagates faults", func(t *testing.T) {
		fault := errors.New("fault")
		_, err := BindContext(context.Background(), parseInt("1"), func(ctx context.Context, i int) (Either[string, int], error) {
			return Either[string, int]{}, fault
		})
		require.ErrorIs(t, err, fault)
	})
}

func TestMapAndMapLeft(t *testing.T) {
	e := Map(parseInt("3"), strconv.Itoa)
	v, ok := e.Right()
	require.True(t, ok)
	assert.Equal(t, "3", v)

	l := MapLeft(parseInt("y"), func(s string) int { return len(s) })
	n, ok := l.Left()
	require.True(t, ok)
	assert.Equal(t, len("not an int: y"), n)

	unchanged := MapLeft(parseInt("4"), func(s string) int { return len(s) })
	r, ok := unchanged.Right()
	require.True(t, ok)
	assert.Equal(t, 4, r)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "left", Coalesce(Left[string, string]("left")))
	assert.Equal(t, "right", Coalesce(Right[string]("right")))
}

func TestMatch(t *testing.T) {
	describe := func(e Either[string, int]) string {
		return Match(e,
			func(l string) string { return "error: " + l },
			func(r int) string { return "value: " + strconv.Itoa(r) },
		)
	}

	assert.Equal(t, "value: 7", describe(parseInt("7")))
	assert.Equal(t, "error: not an int: z", describe(parseInt("z")))
}

func TestOption(t *testing.T) {
	t.Run("zero value is none", func(t *testing.T) {
		var o Option[int]
		assert.True(t, o.IsNone())
		assert.Equal(t, 5, o.IfNone(5))
	})

	t.Run("to either", func(t *testing.T) {
		some := ToEither(Some(1), func() string { return "missing" })
		v, ok := some.Right()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		none := ToEither(None[int](), func() string { return "missing" })
		l, ok := none.Left()
		require.True(t, ok)
		assert.Equal(t, "missing", l)
	})

	t.Run("from pair", func(t *testing.T) {
		m := map[string]int{"a": 1}
		assert.True(t, FromPair(m["a"], true).IsSome())

		_, ok := m["b"]
		assert.True(t, FromPair(m["b"], ok).IsNone())
	})

	t.Run("map", func(t *testing.T) {
		o := MapOption(Some(2), func(i int) int { return i * i })
		v, ok := o.Get()
		require.True(t, ok)
		assert.Equal(t, 4, v)

		assert.True(t, MapOption(None[int](), strconv.Itoa).IsNone())
	})

	t.Run("get or panic", func(t *testing.T) {
		assert.Equal(t, 3, Some(3).GetOrPanic("unreachable"))
		assert.Panics(t, func() {
			None[int]().GetOrPanic("value required")
		})
	})
}

func TestApply(t *testing.T) {
	type pair struct {
		a, b int
	}

	t.Run("combines valid inputs", func(t *testing.T) {
		v := Apply2(ToValidation(parseInt("1")), ToValidation(parseInt("2")), func(a, b int) pair {
			return pair{a, b}
		})

		p, ok := v.Value()
		require.True(t, ok)
		assert.Equal(t, pair{1, 2}, p)
	})

	t.Run("collects every failure", func(t *testing.T) {
		v := Apply3(
			ToValidation(parseInt("a")),
			ToValidation(parseInt("2")),
			ToValidation(parseInt("c")),
			func(a, b, c int) int { return a + b + c },
		)

		assert.False(t, v.IsValid())
		assert.Equal(t, []string{"not an int: a", "not an int: c"}, v.Errors())

		e := v.Either()
		errs, ok := e.Left()
		require.True(t, ok)
		assert.Len(t, errs, 2)
	})
}

func TestTraverse(t *testing.T) {
	toValidation := func(_ int, s string) Validation[int] {
		return ToValidation(parseInt(s))
	}

	t.Run("all valid", func(t *testing.T) {
		v := Traverse([]string{"1", "2", "3"}, toValidation)
		is, ok := v.Value()
		require.True(t, ok)
		assert.Equal(t, []int{1, 2, 3}, is)
	})

	t.Run("empty input", func(t *testing.T) {
		v := Traverse(nil, toValidation)
		is, ok := v.Value()
		require.True(t, ok)
		assert.Empty(t, is)
	})

	t.Run("collects failures from every element", func(t *testing.T) {
		v := Traverse([]string{"x", "2", "y"}, toValidation)
		assert.Equal(t, []string{"not an int: x", "not an int: y"}, v.Errors())
	})
}

func TestBindValidation(t *testing.T) {
	positive := func(i int) Validation[int] {
		if i <= 0 {
			return Invalid[int]("must be positive")
		}
		return Valid(i)
	}

	assert.True(t, BindValidation(Valid(1), positive).IsValid())
	assert.Equal(t, []string{"must be positive"}, BindValidation(Valid(-1), positive).Errors())
	assert.Equal(t, []string{"first"}, BindValidation(Invalid[int]("first"), positive).Errors())
}
