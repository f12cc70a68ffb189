// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/z5labs/ordering/apierror"
)

// HttpResponseWriter is implemented by errors which know how to render
// themselves as an HTTP response, e.g. [apierror.WithStatusCode].
type HttpResponseWriter interface {
	WriteHttpResponse(context.Context, http.ResponseWriter)
}

// ErrorHandler handles errors returned, or panics raised, while serving
// an operation.
//
// Custom error handlers can be configured per operation using [OnError].
type ErrorHandler interface {
	OnError(context.Context, http.ResponseWriter, error)
}

// ErrorHandlerFunc is a function adapter that implements [ErrorHandler].
type ErrorHandlerFunc func(context.Context, http.ResponseWriter, error)

// OnError implements the [ErrorHandler] interface.
func (f ErrorHandlerFunc) OnError(ctx context.Context, w http.ResponseWriter, err error) {
	f(ctx, w, err)
}

// defaultErrorHandler is the fault boundary of every operation. Errors
// which can write themselves are sent as is; anything else is sent as a
// generic internal server error.
func defaultErrorHandler(h slog.Handler) ErrorHandlerFunc {
	log := slog.New(h)

	return func(ctx context.Context, w http.ResponseWriter, err error) {
		log.ErrorContext(ctx, "sending error response", slog.Any("error", err))

		var hrw HttpResponseWriter
		if errors.As(err, &hrw) {
			hrw.WriteHttpResponse(ctx, w)
			return
		}

		apierror.Internal().WriteHttpResponse(ctx, w)
	}
}
