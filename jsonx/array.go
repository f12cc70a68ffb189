// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jsonx

// Array is an ordered sequence of nodes. The zero value is an empty array.
type Array struct {
	items []Node
}

// NewArray returns an [Array] of items.
func NewArray(items ...Node) Array {
	a := Array{items: make([]Node, len(items))}
	copy(a.items, items)
	return a
}

// ToArray maps each element of ts to a node.
func ToArray[T any](ts []T, f func(T) Node) Array {
	items := make([]Node, len(ts))
	for i, t := range ts {
		items[i] = f(t)
	}
	return Array{items: items}
}

// Len returns the number of items.
func (a Array) Len() int {
	return len(a.items)
}

// At returns the i'th item.
func (a Array) At(i int) Node {
	return a.items[i]
}

// Items returns a copy of the items.
func (a Array) Items() []Node {
	items := make([]Node, len(a.items))
	copy(items, a.items)
	return items
}

// Append returns a copy of a with n added to the end.
func (a Array) Append(n Node) Array {
	items := make([]Node, len(a.items), len(a.items)+1)
	copy(items, a.items)
	return Array{items: append(items, n)}
}

// Objects returns the items as objects, failing if any item is not one.
func (a Array) Objects() ([]Object, bool) {
	objs := make([]Object, 0, len(a.items))
	for _, item := range a.items {
		obj, ok := item.(Object)
		if !ok {
			return nil, false
		}
		objs = append(objs, obj)
	}
	return objs, true
}
