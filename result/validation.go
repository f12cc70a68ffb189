// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

// Validation is either a value or a non-empty list of failure messages.
// Unlike [Either], combining validations with [Apply2] or [Apply3]
// collects the failures of every input instead of stopping at the first.
type Validation[T any] struct {
	value T
	errs  []string
}

// Valid returns a successful [Validation].
func Valid[T any](v T) Validation[T] {
	return Validation[T]{value: v}
}

// Invalid returns a failed [Validation]. At least one message is expected;
// an empty message list is recorded as a single empty message.
func Invalid[T any](errs ...string) Validation[T] {
	if len(errs) == 0 {
		errs = []string{""}
	}
	return Validation[T]{errs: errs}
}

// ToValidation converts a single fallible step into a [Validation].
func ToValidation[T any](e Either[string, T]) Validation[T] {
	if l, ok := e.Left(); ok {
		return Invalid[T](l)
	}
	r, _ := e.Right()
	return Valid(r)
}

// IsValid reports whether v holds a value.
func (v Validation[T]) IsValid() bool {
	return len(v.errs) == 0
}

// Value returns the value and whether v is valid.
func (v Validation[T]) Value() (T, bool) {
	return v.value, len(v.errs) == 0
}

// Errors returns a copy of the collected failure messages.
func (v Validation[T]) Errors() []string {
	if len(v.errs) == 0 {
		return nil
	}
	errs := make([]string, len(v.errs))
	copy(errs, v.errs)
	return errs
}

// Either converts v back into a short-circuiting [Either].
func (v Validation[T]) Either() Either[[]string, T] {
	if len(v.errs) > 0 {
		return Left[[]string, T](v.Errors())
	}
	return Right[[]string](v.value)
}

// BindValidation sequences f after v. Unlike [Apply2], f is only called on a
// valid input, so this is for dependent steps.
func BindValidation[A, B any](v Validation[A], f func(A) Validation[B]) Validation[B] {
	if len(v.errs) > 0 {
		return Validation[B]{errs: v.errs}
	}
	return f(v.value)
}

// Apply2 combines two independent validations.
func Apply2[A, B, R any](a Validation[A], b Validation[B], f func(A, B) R) Validation[R] {
	errs := collect(a.errs, b.errs)
	if len(errs) > 0 {
		return Validation[R]{errs: errs}
	}
	return Valid(f(a.value, b.value))
}

// Apply3 combines three independent validations.
func Apply3[A, B, C, R any](a Validation[A], b Validation[B], c Validation[C], f func(A, B, C) R) Validation[R] {
	errs := collect(a.errs, b.errs, c.errs)
	if len(errs) > 0 {
		return Validation[R]{errs: errs}
	}
	return Valid(f(a.value, b.value, c.value))
}

// Traverse validates every element of as with f, collecting the failures of
// all elements.
func Traverse[A, B any](as []A, f func(int, A) Validation[B]) Validation[[]B] {
	var errs []string
	bs := make([]B, 0, len(as))
	for i, a := range as {
		v := f(i, a)
		if len(v.errs) > 0 {
			errs = append(errs, v.errs...)
			continue
		}
		bs = append(bs, v.value)
	}
	if len(errs) > 0 {
		return Validation[[]B]{errs: errs}
	}
	return Valid(bs)
}

func collect(lists ...[]string) []string {
	var errs []string
	for _, l := range lists {
		errs = append(errs, l...)
	}
	return errs
}
