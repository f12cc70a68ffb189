// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package endpoint

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/z5labs/ordering"
	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/order"
	"github.com/z5labs/ordering/rest"
	"github.com/z5labs/ordering/result"
)

// DeleteOrder creates the DELETE /v1/orders/{orderId} endpoint.
func DeleteOrder(deleter OrderDeleter) rest.ApiOption {
	h := &deleteOrderHandler{
		log:     ordering.Logger(instrumentationName),
		deleter: deleter,
	}

	return rest.Handle(
		http.MethodDelete,
		orderPath,
		rest.Delete(order.ParseID, h.delete),
		rest.Summary("Delete an order"),
		rest.OperationID("deleteOrder"),
		rest.Tags("orders"),
	)
}

type deleteOrderHandler struct {
	log     *slog.Logger
	deleter OrderDeleter
}

func (h *deleteOrderHandler) delete(ctx context.Context, id order.ID, tag etag.ETag) (result.Either[rest.DeleteError, result.Unit], error) {
	err := h.deleter.Delete(ctx, id, tag)
	if errors.Is(err, order.ErrETagMismatch) {
		return result.Left[rest.DeleteError, result.Unit](rest.ETagMismatch), nil
	}
	if err != nil {
		return result.Either[rest.DeleteError, result.Unit]{}, err
	}

	h.log.InfoContext(ctx, "deleted order", slog.String("order.id", id.String()))
	return result.Right[rest.DeleteError](result.Unit{}), nil
}
