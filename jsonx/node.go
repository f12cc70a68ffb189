// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package jsonx provides an immutable JSON document model along with
// validating accessors for reading untrusted documents.
//
// A document is made of [Object], [Array] and [Value] nodes. A nil [Node]
// represents JSON null. All operations which would modify a node instead
// return a modified copy, so documents may be shared freely between
// goroutines.
package jsonx

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Node is one of [Object], [Array] or [Value]. A nil Node is JSON null.
type Node interface {
	isNode()
}

func (Object) isNode() {}
func (Array) isNode()  {}
func (Value) isNode()  {}

// Kind identifies the primitive carried by a [Value].
type Kind int

// Value kinds. KindInvalid marks the zero [Value].
const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDateTime
	KindGUID
	KindChar
)

// String returns the name of the kind as used in conversion errors.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "double"
	case KindString:
		return "string"
	case KindDateTime:
		return "DateTime"
	case KindGUID:
		return "Guid"
	case KindChar:
		return "char"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a JSON primitive. Exactly one primitive is carried at a time,
// identified by its [Kind]. The zero Value has [KindInvalid] and should
// not be used.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
	g    uuid.UUID
	c    rune
}

// Bool returns a [KindBool] value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a [KindInt] value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a [KindFloat] value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a [KindString] value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// DateTime returns a [KindDateTime] value. It is encoded as RFC 3339.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// GUID returns a [KindGUID] value.
func GUID(g uuid.UUID) Value { return Value{kind: KindGUID, g: g} }

// Char returns a [KindChar] value. It is encoded as a one rune string.
func Char(c rune) Value { return Value{kind: KindChar, c: c} }

// Kind returns the primitive kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// BoolValue returns the bool carried by v.
func (v Value) BoolValue() (bool, bool) {
	return v.b, v.kind == KindBool
}

// IntValue returns the integer carried by v. Floats are not truncated.
func (v Value) IntValue() (int64, bool) {
	return v.i, v.kind == KindInt
}

// DoubleValue returns v as a float64. Both int and float values convert.
func (v Value) DoubleValue() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// StringValue returns the textual form of v. Strings, GUIDs, date-times
// and chars all have a textual form.
func (v Value) StringValue() (string, bool) {
	switch v.kind {
	case KindString:
		return v.s, true
	case KindGUID:
		return v.g.String(), true
	case KindDateTime:
		return v.t.Format(time.RFC3339Nano), true
	case KindChar:
		return string(v.c), true
	default:
		return "", false
	}
}

// GUIDValue returns v as a GUID. Strings are parsed.
func (v Value) GUIDValue() (uuid.UUID, bool) {
	switch v.kind {
	case KindGUID:
		return v.g, true
	case KindString:
		g, err := uuid.Parse(v.s)
		return g, err == nil
	default:
		return uuid.Nil, false
	}
}

// DateTimeValue returns v as a time. Strings are parsed as RFC 3339.
func (v Value) DateTimeValue() (time.Time, bool) {
	switch v.kind {
	case KindDateTime:
		return v.t, true
	case KindString:
		t, err := time.Parse(time.RFC3339Nano, v.s)
		return t, err == nil
	default:
		return time.Time{}, false
	}
}

// CharValue returns the rune carried by v.
func (v Value) CharValue() (rune, bool) {
	return v.c, v.kind == KindChar
}

// Equal reports whether v and other carry the same primitive.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindDateTime:
		return v.t.Equal(other.t)
	default:
		return v == other
	}
}
