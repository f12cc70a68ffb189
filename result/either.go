// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package result provides small generic carriers for sequencing fallible steps.
//
// An [Either] holds exactly one of two values. By convention the left value
// is the failure and the right value is the success, so [Bind] short-circuits
// on the first left value it sees. [Validation] is the accumulating
// counterpart used when independent steps should all report their failures.
package result

import "context"

// Unit is the success value of steps which produce nothing.
type Unit struct{}

// Either holds either a left value (failure) or a right value (success).
// The zero value is a left holding the zero value of L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an [Either] holding the failure value l.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right returns an [Either] holding the success value r.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// IsRight reports whether e holds a success value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether e holds a failure value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Right returns the success value and true, if present.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Left returns the failure value and true, if present.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Bind sequences f after e. f is never called if e holds a failure.
func Bind[L, A, B any](e Either[L, A], f func(A) Either[L, B]) Either[L, B] {
	if !e.isRight {
		return Left[L, B](e.left)
	}
	return f(e.right)
}

// BindContext is the suspending form of [Bind]. f may block and may return a
// non-nil error for faults which are not part of the modelled failure set;
// such errors are passed through untouched.
func BindContext[L, A, B any](ctx context.Context, e Either[L, A], f func(context.Context, A) (Either[L, B], error)) (Either[L, B], error) {
	if !e.isRight {
		return Left[L, B](e.left), nil
	}
	return f(ctx, e.right)
}

// Map transforms the success value of e.
func Map[L, A, B any](e Either[L, A], f func(A) B) Either[L, B] {
	if !e.isRight {
		return Left[L, B](e.left)
	}
	return Right[L](f(e.right))
}

// MapLeft transforms the failure value of e.
func MapLeft[A, B, R any](e Either[A, R], f func(A) B) Either[B, R] {
	if e.isRight {
		return Right[B](e.right)
	}
	return Left[B, R](f(e.left))
}

// Match collapses e by applying onLeft or onRight.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Coalesce collapses an [Either] whose two channels share a type.
func Coalesce[T any](e Either[T, T]) T {
	if e.isRight {
		return e.right
	}
	return e.left
}
