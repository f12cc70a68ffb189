// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package endpoint

import (
	"context"
	"net/http"

	"github.com/z5labs/ordering/order"
	"github.com/z5labs/ordering/rest"
	"github.com/z5labs/ordering/result"
)

// GetOrder creates the GET /v1/orders/{orderId} endpoint.
func GetOrder(finder OrderFinder) rest.ApiOption {
	h := &getOrderHandler{finder: finder}

	return rest.Handle(
		http.MethodGet,
		orderPath,
		rest.Get(order.ParseID, h.find, order.Order.JSON),
		rest.Summary("Get an order"),
		rest.OperationID("getOrder"),
		rest.Tags("orders"),
	)
}

type getOrderHandler struct {
	finder OrderFinder
}

func (h *getOrderHandler) find(ctx context.Context, id order.ID) (result.Option[rest.Found[order.Order]], error) {
	found := result.MapOption(h.finder.Find(ctx, id), func(v order.Versioned) rest.Found[order.Order] {
		return rest.Found[order.Order]{Resource: v.Order, ETag: v.ETag}
	})
	return found, nil
}
