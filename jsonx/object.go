// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jsonx

import (
	"fmt"

	"github.com/z5labs/ordering/result"
)

// Property is a single key/value pair of an [Object].
type Property struct {
	Key   string
	Value Node
}

// Object is an ordered set of uniquely keyed properties. Properties are
// serialized in insertion order. The zero value is an empty object.
type Object struct {
	props []Property
}

// NewObject returns an [Object] holding props in order.
// It panics if two properties share a key.
func NewObject(props ...Property) Object {
	var o Object
	for _, p := range props {
		o = o.AddProperty(p.Key, p.Value)
	}
	return o
}

// Len returns the number of properties.
func (o Object) Len() int {
	return len(o.props)
}

// Properties returns a copy of the properties in order.
func (o Object) Properties() []Property {
	props := make([]Property, len(o.props))
	copy(props, o.props)
	return props
}

// Lookup returns the node stored at name. A present JSON null is
// reported as (nil, true).
func (o Object) Lookup(name string) (Node, bool) {
	i := o.index(name)
	if i < 0 {
		return nil, false
	}
	return o.props[i].Value, true
}

// AddProperty returns a copy of o with name appended.
// It panics if o already has a property called name; use [Object.SetProperty]
// to overwrite.
func (o Object) AddProperty(name string, value Node) Object {
	if o.index(name) >= 0 {
		panic(fmt.Errorf("jsonx: property '%s' already exists", name))
	}
	props := make([]Property, len(o.props), len(o.props)+1)
	copy(props, o.props)
	return Object{props: append(props, Property{Key: name, Value: value})}
}

// AddOptionalProperty is like [Object.AddProperty] but returns o unchanged
// when value is absent.
func (o Object) AddOptionalProperty(name string, value result.Option[Node]) Object {
	n, ok := value.Get()
	if !ok {
		return o
	}
	return o.AddProperty(name, n)
}

// SetProperty returns a copy of o where name holds value. An existing
// property keeps its position.
func (o Object) SetProperty(name string, value Node) Object {
	i := o.index(name)
	if i < 0 {
		return o.AddProperty(name, value)
	}
	props := o.Properties()
	props[i].Value = value
	return Object{props: props}
}

// RemoveProperty returns a copy of o without name.
func (o Object) RemoveProperty(name string) Object {
	i := o.index(name)
	if i < 0 {
		return o
	}
	props := make([]Property, 0, len(o.props)-1)
	props = append(props, o.props[:i]...)
	props = append(props, o.props[i+1:]...)
	return Object{props: props}
}

func (o Object) index(name string) int {
	for i, p := range o.props {
		if p.Key == name {
			return i
		}
	}
	return -1
}
