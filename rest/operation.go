// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/z5labs/ordering"

	"github.com/swaggest/openapi-go/openapi3"
	"github.com/z5labs/sdk-go/ptr"
	"github.com/z5labs/sdk-go/try"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/ordering/rest"

// Handler serves a single HTTP operation.
type Handler interface {
	Handle(context.Context, *http.Request) (Response, error)

	// Operation describes the handler for the OpenAPI spec. The path
	// parameters are filled in by [Handle].
	Operation() openapi3.Operation
}

// HandlerFunc adapts a function into a [Handler] with an empty
// OpenAPI description.
type HandlerFunc func(context.Context, *http.Request) (Response, error)

// Handle implements the [Handler] interface.
func (f HandlerFunc) Handle(ctx context.Context, r *http.Request) (Response, error) {
	return f(ctx, r)
}

// Operation implements the [Handler] interface.
func (f HandlerFunc) Operation() openapi3.Operation {
	return openapi3.Operation{}
}

// OperationOptions are used for configuring an operation registered with [Handle].
type OperationOptions struct {
	errHandler  ErrorHandler
	summary     string
	operationID string
	tags        []string
}

// OperationOption sets a value on [OperationOptions].
type OperationOption func(*OperationOptions)

// OnError overrides the default [ErrorHandler] of an operation.
func OnError(eh ErrorHandler) OperationOption {
	return func(oo *OperationOptions) {
		oo.errHandler = eh
	}
}

// Summary sets the OpenAPI summary of an operation.
func Summary(s string) OperationOption {
	return func(oo *OperationOptions) {
		oo.summary = s
	}
}

// OperationID sets the OpenAPI operation id of an operation.
func OperationID(id string) OperationOption {
	return func(oo *OperationOptions) {
		oo.operationID = id
	}
}

// Tags adds OpenAPI tags to an operation.
func Tags(tags ...string) OperationOption {
	return func(oo *OperationOptions) {
		oo.tags = append(oo.tags, tags...)
	}
}

type operation struct {
	route      string
	log        *slog.Logger
	tracer     trace.Tracer
	responses  metric.Int64Counter
	errHandler ErrorHandler
	handler    Handler
}

// Handle registers h to serve method requests on path.
//
// It panics if the operation cannot be added to the OpenAPI spec.
func Handle(method string, path Path, h Handler, opts ...OperationOption) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		oo := &OperationOptions{
			errHandler: defaultErrorHandler(ordering.LogHandler(instrumentationName)),
		}
		for _, opt := range opts {
			opt(oo)
		}

		op := h.Operation()
		op.Parameters = append(op.Parameters, path.parameters()...)
		if oo.summary != "" {
			op.Summary = ptr.Ref(oo.summary)
		}
		if oo.operationID != "" {
			op.ID = ptr.Ref(oo.operationID)
		}
		op.Tags = append(op.Tags, oo.tags...)

		endpoint := path.String()

		err := ao.def.AddOperation(method, endpoint, op)
		if err != nil {
			panic(err)
		}

		responses, err := otel.Meter(instrumentationName).Int64Counter(
			"rest.operation.responses",
			metric.WithDescription("Number of responses sent by an operation."),
		)
		if err != nil {
			panic(err)
		}

		ao.mux.Method(method, endpoint, otelhttp.WithRouteTag(endpoint, &operation{
			route:      endpoint,
			log:        ordering.Logger(instrumentationName),
			tracer:     otel.Tracer(instrumentationName),
			responses:  responses,
			errHandler: oo.errHandler,
			handler:    h,
		}))
	})
}

// ServeHTTP implements the [http.Handler] interface.
func (o *operation) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	spanCtx, span := o.tracer.Start(r.Context(), "operation.ServeHTTP")
	defer span.End()

	var err error
	defer func() {
		if err == nil {
			return
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.errHandler.OnError(spanCtx, w, err)
	}()
	defer try.Recover(&err)

	resp, err := o.handler.Handle(spanCtx, r.WithContext(spanCtx))
	if err != nil {
		return
	}

	body, err := resp.encode()
	if err != nil {
		return
	}

	o.responses.Add(
		spanCtx,
		1,
		metric.WithAttributes(
			attribute.String("http.route", o.route),
			attribute.String("http.response.status_code", strconv.Itoa(resp.StatusCode)),
		),
	)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	// The status is committed once writing starts, so a failure here is
	// only recorded.
	werr := resp.write(w, body)
	if werr == nil {
		return
	}
	span.RecordError(werr)
	o.log.WarnContext(
		spanCtx,
		"failed to write response body",
		slog.String("http.route", o.route),
		slog.Any("error", werr),
	)
}
