// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import "fmt"

// Option is a value which may be absent. The zero value is absent.
type Option[T any] struct {
	v  T
	ok bool
}

// Some returns a present [Option].
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, ok: true}
}

// None returns an absent [Option].
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair lifts the common Go (value, ok) pair into an [Option].
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// IfNone returns the value, or def if absent.
func (o Option[T]) IfNone(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// GetOrPanic returns the value, panicking with msg if absent.
// Only use this where absence is a programming error.
func (o Option[T]) GetOrPanic(msg string) T {
	if !o.ok {
		panic(fmt.Errorf("result: %s", msg))
	}
	return o.v
}

// MapOption transforms a present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.v))
}

// ToEither converts o into an [Either], calling onNone for the failure value
// when o is absent.
func ToEither[L, T any](o Option[T], onNone func() L) Either[L, T] {
	if !o.ok {
		return Left[L, T](onNone())
	}
	return Right[L](o.v)
}
