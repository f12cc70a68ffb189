// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/result"

	"github.com/swaggest/openapi-go/openapi3"
	"github.com/z5labs/sdk-go/ptr"
)

// ETagMismatchMessage is sent when the If-Match precondition fails.
const ETagMismatchMessage = "The eTag passed in the 'If-Match' header is invalid. Another process might have updated the resource."

// DeleteError is an expected failure of a [DeleteFunc].
//
// The set of errors is closed. A [DeleteFunc] returning a value other
// than the ones defined here is a fault.
type DeleteError int

const (
	// ETagMismatch means the resource has a different version than the
	// one supplied by the client.
	ETagMismatch DeleteError = iota + 1
)

func (e DeleteError) String() string {
	switch e {
	case ETagMismatch:
		return "ETagMismatch"
	default:
		return fmt.Sprintf("DeleteError(%d)", int(e))
	}
}

// UnhandledDeleteError is returned by [HandleDelete] when a [DeleteFunc]
// reports a [DeleteError] without a defined response.
type UnhandledDeleteError struct {
	Err DeleteError
}

// Error implements the [error] interface.
func (e UnhandledDeleteError) Error() string {
	return fmt.Sprintf("rest: unhandled delete error: %s", e.Err)
}

// DeleteFunc deletes the resource if its current version is tag.
// A non-nil error is a fault and results in a 500 response.
type DeleteFunc[ID any] func(ctx context.Context, id ID, tag etag.ETag) (result.Either[DeleteError, result.Unit], error)

type deleteRequest[ID any] struct {
	id  ID
	tag etag.ETag
}

// HandleDelete deletes a single resource.
//
// The trailing path segment is parsed with parse, failing with 400. The
// If-Match header is then validated as described by [IfMatch]. Only a
// fully valid request is passed to tryDelete. A version mismatch results
// in a 412 and success results in a 204 with no body.
func HandleDelete[ID any](ctx context.Context, r *http.Request, parse IDParser[ID], tryDelete DeleteFunc[ID]) (Response, error) {
	req := result.Bind(parseRequestID(r, parse), func(id ID) result.Either[Response, deleteRequest[ID]] {
		return result.Map(IfMatch(r.Header), func(tag etag.ETag) deleteRequest[ID] {
			return deleteRequest[ID]{id: id, tag: tag}
		})
	})

	resp, err := result.BindContext(ctx, req, func(ctx context.Context, req deleteRequest[ID]) (result.Either[Response, Response], error) {
		deleted, err := tryDelete(ctx, req.id, req.tag)
		if err != nil {
			return result.Either[Response, Response]{}, err
		}

		derr, failed := deleted.Left()
		if !failed {
			return result.Right[Response](NoContent()), nil
		}
		switch derr {
		case ETagMismatch:
			e := apierror.New(apierror.ETagMismatch, ETagMismatchMessage).WithStatus(http.StatusPreconditionFailed)
			return result.Left[Response, Response](FromError(e)), nil
		default:
			return result.Either[Response, Response]{}, UnhandledDeleteError{Err: derr}
		}
	})
	if err != nil {
		return Response{}, err
	}
	return result.Coalesce(resp), nil
}

// Delete returns a [Handler] which serves requests with [HandleDelete].
func Delete[ID any](parse IDParser[ID], tryDelete DeleteFunc[ID]) Handler {
	return &deleteHandler[ID]{
		parse:     parse,
		tryDelete: tryDelete,
	}
}

type deleteHandler[ID any] struct {
	parse     IDParser[ID]
	tryDelete DeleteFunc[ID]
}

func (h *deleteHandler[ID]) Handle(ctx context.Context, r *http.Request) (Response, error) {
	return HandleDelete(ctx, r, h.parse, h.tryDelete)
}

func (h *deleteHandler[ID]) Operation() openapi3.Operation {
	return openapi3.Operation{
		Parameters: []openapi3.ParameterOrRef{
			{
				Parameter: &openapi3.Parameter{
					Name:        "If-Match",
					In:          openapi3.ParameterInHeader,
					Description: ptr.Ref("The ETag of the version being deleted."),
					Required:    ptr.Ref(true),
					Schema:      stringSchema(),
				},
			},
		},
		Responses: openapi3.Responses{
			MapOfResponseOrRefValues: map[string]openapi3.ResponseOrRef{
				"204": {Response: &openapi3.Response{Description: "The resource was deleted."}},
				"400": apiErrorResponse("The resource ID or If-Match header is invalid."),
				"412": apiErrorResponse("The If-Match header does not match the current ETag."),
				"428": apiErrorResponse("The If-Match header is missing."),
				"500": apiErrorResponse("An unexpected error occurred."),
			},
		},
	}
}
