// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jsonx

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/z5labs/ordering/result"
)

// PropertyError is returned by the Get accessors when a property
// cannot be read as the requested type.
type PropertyError struct {
	Property string
	Message  string
}

// Error implements the [error] interface.
func (e *PropertyError) Error() string {
	return e.Message
}

// Converter reads a present, non-null property node as T. On failure it
// returns a message which names the property.
type Converter[T any] func(name string, n Node) result.Either[string, T]

// TryGet reads the property name of o using conv.
func TryGet[T any](o Object, name string, conv Converter[T]) result.Either[string, T] {
	return result.Bind(o.TryGetProperty(name), func(n Node) result.Either[string, T] {
		return conv(name, n)
	})
}

// Get is like [TryGet] but reports failure as a [*PropertyError].
func Get[T any](o Object, name string, conv Converter[T]) (T, error) {
	e := TryGet(o, name, conv)
	if msg, ok := e.Left(); ok {
		var zero T
		return zero, &PropertyError{Property: name, Message: msg}
	}
	v, _ := e.Right()
	return v, nil
}

// TryGetOptional reads the property name of o using conv. A missing or
// null property is reported as none; a present property of the wrong type
// is still a failure.
func TryGetOptional[T any](o Object, name string, conv Converter[T]) result.Either[string, result.Option[T]] {
	n, ok := o.Lookup(name)
	if !ok || n == nil {
		return result.Right[string](result.None[T]())
	}
	return result.Map(conv(name, n), result.Some[T])
}

// AsNode accepts any present node.
func AsNode(name string, n Node) result.Either[string, Node] {
	return result.Right[string](n)
}

// AsObject accepts a JSON object.
func AsObject(name string, n Node) result.Either[string, Object] {
	obj, ok := n.(Object)
	if !ok {
		return result.Left[string, Object](fmt.Sprintf("Property '%s' is not a JSON object.", name))
	}
	return result.Right[string](obj)
}

// AsArray accepts a JSON array.
func AsArray(name string, n Node) result.Either[string, Array] {
	arr, ok := n.(Array)
	if !ok {
		return result.Left[string, Array](fmt.Sprintf("Property '%s' is not a JSON array.", name))
	}
	return result.Right[string](arr)
}

// AsObjectArray accepts an array of JSON objects.
func AsObjectArray(name string, n Node) result.Either[string, []Object] {
	return result.Bind(AsArray(name, n), func(arr Array) result.Either[string, []Object] {
		objs, ok := arr.Objects()
		if !ok {
			return result.Left[string, []Object](fmt.Sprintf("Property '%s' is not an array of JSON objects.", name))
		}
		return result.Right[string](objs)
	})
}

// AsValue accepts a JSON primitive.
func AsValue(name string, n Node) result.Either[string, Value] {
	v, ok := n.(Value)
	if !ok {
		return result.Left[string, Value](fmt.Sprintf("Property '%s' is not a JSON value.", name))
	}
	return result.Right[string](v)
}

// AsString accepts a string. GUIDs, date-times and chars convert to their text.
func AsString(name string, n Node) result.Either[string, string] {
	return convertValue(name, n, "string", Value.StringValue)
}

// AsBool accepts a bool.
func AsBool(name string, n Node) result.Either[string, bool] {
	return convertValue(name, n, "bool", Value.BoolValue)
}

// AsInt accepts an integer. Floats are rejected.
func AsInt(name string, n Node) result.Either[string, int64] {
	return convertValue(name, n, "int", Value.IntValue)
}

// AsDouble accepts a number. Integers are widened.
func AsDouble(name string, n Node) result.Either[string, float64] {
	return convertValue(name, n, "double", Value.DoubleValue)
}

// AsGUID accepts a GUID. Strings are parsed.
func AsGUID(name string, n Node) result.Either[string, uuid.UUID] {
	return convertValue(name, n, "Guid", Value.GUIDValue)
}

// AsDateTime accepts a date-time.
func AsDateTime(name string, n Node) result.Either[string, time.Time] {
	return convertValue(name, n, "DateTimeOffset", Value.DateTimeValue)
}

func convertValue[T any](name string, n Node, typeName string, f func(Value) (T, bool)) result.Either[string, T] {
	return result.Bind(AsValue(name, n), func(v Value) result.Either[string, T] {
		t, ok := f(v)
		if !ok {
			return result.Left[string, T](fmt.Sprintf("Property '%s''s value cannot be converted to %s.", name, typeName))
		}
		return result.Right[string](t)
	})
}

// TryGetProperty returns the non-null node stored at name.
func (o Object) TryGetProperty(name string) result.Either[string, Node] {
	n, ok := o.Lookup(name)
	if !ok {
		return result.Left[string, Node](fmt.Sprintf("Property '%s' is missing.", name))
	}
	if n == nil {
		return result.Left[string, Node](fmt.Sprintf("Property '%s' is null.", name))
	}
	return result.Right[string](n)
}

// TryGetObject returns the property name as a JSON object.
func (o Object) TryGetObject(name string) result.Either[string, Object] {
	return TryGet(o, name, AsObject)
}

// TryGetArray returns the property name as a JSON array.
func (o Object) TryGetArray(name string) result.Either[string, Array] {
	return TryGet(o, name, AsArray)
}

// TryGetObjectArray returns the property name as an array of JSON objects.
func (o Object) TryGetObjectArray(name string) result.Either[string, []Object] {
	return TryGet(o, name, AsObjectArray)
}

// TryGetValue returns the property name as a JSON primitive.
func (o Object) TryGetValue(name string) result.Either[string, Value] {
	return TryGet(o, name, AsValue)
}

// TryGetString returns the property name as a string.
func (o Object) TryGetString(name string) result.Either[string, string] {
	return TryGet(o, name, AsString)
}

// TryGetBool returns the property name as a bool.
func (o Object) TryGetBool(name string) result.Either[string, bool] {
	return TryGet(o, name, AsBool)
}

// TryGetInt returns the property name as an integer.
func (o Object) TryGetInt(name string) result.Either[string, int64] {
	return TryGet(o, name, AsInt)
}

// TryGetDouble returns the property name as a number.
func (o Object) TryGetDouble(name string) result.Either[string, float64] {
	return TryGet(o, name, AsDouble)
}

// TryGetGUID returns the property name as a GUID.
func (o Object) TryGetGUID(name string) result.Either[string, uuid.UUID] {
	return TryGet(o, name, AsGUID)
}

// TryGetDateTime returns the property name as a date-time.
func (o Object) TryGetDateTime(name string) result.Either[string, time.Time] {
	return TryGet(o, name, AsDateTime)
}

// GetProperty is like [Object.TryGetProperty] but fails with a [*PropertyError].
func (o Object) GetProperty(name string) (Node, error) {
	return Get(o, name, AsNode)
}

// GetObject is like [Object.TryGetObject] but fails with a [*PropertyError].
func (o Object) GetObject(name string) (Object, error) {
	return Get(o, name, AsObject)
}

// GetArray is like [Object.TryGetArray] but fails with a [*PropertyError].
func (o Object) GetArray(name string) (Array, error) {
	return Get(o, name, AsArray)
}

// GetObjectArray is like [Object.TryGetObjectArray] but fails with a [*PropertyError].
func (o Object) GetObjectArray(name string) ([]Object, error) {
	return Get(o, name, AsObjectArray)
}

// GetValue is like [Object.TryGetValue] but fails with a [*PropertyError].
func (o Object) GetValue(name string) (Value, error) {
	return Get(o, name, AsValue)
}

// GetString is like [Object.TryGetString] but fails with a [*PropertyError].
func (o Object) GetString(name string) (string, error) {
	return Get(o, name, AsString)
}

// GetBool is like [Object.TryGetBool] but fails with a [*PropertyError].
func (o Object) GetBool(name string) (bool, error) {
	return Get(o, name, AsBool)
}

// GetInt is like [Object.TryGetInt] but fails with a [*PropertyError].
func (o Object) GetInt(name string) (int64, error) {
	return Get(o, name, AsInt)
}

// GetDouble is like [Object.TryGetDouble] but fails with a [*PropertyError].
func (o Object) GetDouble(name string) (float64, error) {
	return Get(o, name, AsDouble)
}

// GetGUID is like [Object.TryGetGUID] but fails with a [*PropertyError].
func (o Object) GetGUID(name string) (uuid.UUID, error) {
	return Get(o, name, AsGUID)
}

// GetDateTime is like [Object.TryGetDateTime] but fails with a [*PropertyError].
func (o Object) GetDateTime(name string) (time.Time, error) {
	return Get(o, name, AsDateTime)
}

// TryGetOptionalObject is like [Object.TryGetObject] but a missing or null property is None.
func (o Object) TryGetOptionalObject(name string) result.Either[string, result.Option[Object]] {
	return TryGetOptional(o, name, AsObject)
}

// TryGetOptionalArray is like [Object.TryGetArray] but a missing or null property is None.
func (o Object) TryGetOptionalArray(name string) result.Either[string, result.Option[Array]] {
	return TryGetOptional(o, name, AsArray)
}

// TryGetOptionalObjectArray is like [Object.TryGetObjectArray] but a missing or null property is None.
func (o Object) TryGetOptionalObjectArray(name string) result.Either[string, result.Option[[]Object]] {
	return TryGetOptional(o, name, AsObjectArray)
}

// TryGetOptionalString is like [Object.TryGetString] but a missing or null property is None.
func (o Object) TryGetOptionalString(name string) result.Either[string, result.Option[string]] {
	return TryGetOptional(o, name, AsString)
}
