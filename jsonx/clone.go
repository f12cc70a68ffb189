// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jsonx

import "fmt"

// Clone returns a deep copy of n. It panics if n contains a [Value]
// with an unknown [Kind], which can only happen for a zero Value.
func Clone(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil
	case Object:
		return cloneObject(n)
	case Array:
		items := make([]Node, len(n.items))
		for i, item := range n.items {
			items[i] = Clone(item)
		}
		return Array{items: items}
	case Value:
		return cloneValue(n)
	default:
		panic(fmt.Errorf("jsonx: unknown node type %T", n))
	}
}

func cloneObject(o Object) Object {
	props := make([]Property, len(o.props))
	for i, p := range o.props {
		props[i] = Property{Key: p.Key, Value: Clone(p.Value)}
	}
	return Object{props: props}
}

func cloneValue(v Value) Value {
	switch v.kind {
	case KindBool:
		return Bool(v.b)
	case KindInt:
		return Int(v.i)
	case KindFloat:
		return Float(v.f)
	case KindString:
		return String(v.s)
	case KindDateTime:
		return DateTime(v.t)
	case KindGUID:
		return GUID(v.g)
	case KindChar:
		return Char(v.c)
	default:
		panic(fmt.Errorf("jsonx: cannot clone value of kind %s", v.kind))
	}
}
