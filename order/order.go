// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package order models orders and keeps them in memory.
package order

import (
	"github.com/z5labs/ordering/jsonx"
	"github.com/z5labs/ordering/result"

	"github.com/google/uuid"
)

// InvalidIDMessage is returned by [ParseID] for malformed IDs.
const InvalidIDMessage = "Order ID must be a GUID."

// ID uniquely identifies an [Order].
type ID struct {
	value uuid.UUID
}

// NewID returns a random ID.
func NewID() ID {
	return ID{value: uuid.New()}
}

// IDFromUUID wraps u as an ID.
func IDFromUUID(u uuid.UUID) ID {
	return ID{value: u}
}

// ParseID parses a GUID string such as the trailing segment of
// /v1/orders/{orderId}.
func ParseID(s string) result.Either[string, ID] {
	u, err := uuid.Parse(s)
	if err != nil {
		return result.Left[string, ID](InvalidIDMessage)
	}
	return result.Right[string](ID{value: u})
}

// UUID returns the underlying GUID.
func (id ID) UUID() uuid.UUID {
	return id.value
}

func (id ID) String() string {
	return id.value.String()
}

// Order is a customer order.
type Order struct {
	ID ID
}

// JSON encodes o as
//
//	{"id": "<guid>"}
func (o Order) JSON() jsonx.Object {
	return jsonx.NewObject(jsonx.Property{Key: "id", Value: jsonx.GUID(o.ID.value)})
}

// FromJSON decodes an [Order] encoded by [Order.JSON].
func FromJSON(obj jsonx.Object) result.Either[string, Order] {
	return result.Map(obj.TryGetGUID("id"), func(u uuid.UUID) Order {
		return Order{ID: ID{value: u}}
	})
}
