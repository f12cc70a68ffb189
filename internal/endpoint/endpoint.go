// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package endpoint registers the order operations of the ordering API.
package endpoint

import (
	"context"

	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/order"
	"github.com/z5labs/ordering/rest"
	"github.com/z5labs/ordering/result"
)

const instrumentationName = "github.com/z5labs/ordering/internal/endpoint"

var orderPath = rest.BasePath("/v1/orders").Param("orderId")

// OrderFinder looks up the current version of an order.
type OrderFinder interface {
	Find(context.Context, order.ID) result.Option[order.Versioned]
}

// OrderDeleter deletes an order if its current version matches.
// It returns [order.ErrETagMismatch] if it does not.
type OrderDeleter interface {
	Delete(context.Context, order.ID, etag.ETag) error
}
