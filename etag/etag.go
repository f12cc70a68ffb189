// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package etag defines the resource version token used for optimistic concurrency.
package etag

import (
	"errors"
	"strings"
)

// ErrEmpty is returned when constructing an [ETag] from a blank string.
var ErrEmpty = errors.New("ETag cannot be null or whitespace.")

// ETag is an opaque resource version marker. It is used both as the
// precondition supplied in an If-Match header and as the version stamp
// stored alongside a resource. Two ETags are equal iff their values are
// equal, so ETags may be compared with ==.
//
// The zero value is not a valid ETag.
type ETag struct {
	value string
}

// New returns an [ETag] for s. It fails with [ErrEmpty] if s is empty or
// only whitespace.
func New(s string) (ETag, error) {
	if strings.TrimSpace(s) == "" {
		return ETag{}, ErrEmpty
	}
	return ETag{value: s}, nil
}

// MustNew is like [New] but panics on error.
func MustNew(s string) ETag {
	e, err := New(s)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the token value.
func (e ETag) String() string {
	return e.value
}

// IsZero reports whether e is the zero value.
func (e ETag) IsZero() bool {
	return e.value == ""
}
