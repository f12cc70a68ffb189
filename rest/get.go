// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"net/http"

	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/jsonx"
	"github.com/z5labs/ordering/result"

	"github.com/swaggest/openapi-go/openapi3"
)

// ResourceNotFoundMessage is sent when a lookup finds nothing.
const ResourceNotFoundMessage = "Resource with ID was not found"

// Found is a resource along with its current version.
type Found[R any] struct {
	Resource R
	ETag     etag.ETag
}

// FindFunc looks up a resource. A missing resource is reported as none;
// a non-nil error is a fault and results in a 500 response.
type FindFunc[ID, R any] func(context.Context, ID) (result.Option[Found[R]], error)

// SerializeFunc encodes a resource as a JSON object.
type SerializeFunc[R any] func(R) jsonx.Object

// HandleGet serves a single resource.
//
// The trailing path segment is parsed with parse, failing with 400. The
// resource is then looked up with find, failing with 404. A found resource
// is serialized and sent with a 200 along with its ETag in the "eTag"
// property of the body.
func HandleGet[ID, R any](ctx context.Context, r *http.Request, parse IDParser[ID], find FindFunc[ID, R], serialize SerializeFunc[R]) (Response, error) {
	id := parseRequestID(r, parse)

	found, err := result.BindContext(ctx, id, func(ctx context.Context, id ID) (result.Either[Response, Found[R]], error) {
		o, err := find(ctx, id)
		if err != nil {
			return result.Either[Response, Found[R]]{}, err
		}
		return result.ToEither(o, func() Response {
			return FromError(apierror.NotFound(ResourceNotFoundMessage))
		}), nil
	})
	if err != nil {
		return Response{}, err
	}

	resp := result.Map(found, func(f Found[R]) Response {
		body := serialize(f.Resource).SetProperty("eTag", jsonx.String(f.ETag.String()))
		return Ok(body)
	})
	return result.Coalesce(resp), nil
}

// Get returns a [Handler] which serves requests with [HandleGet].
func Get[ID, R any](parse IDParser[ID], find FindFunc[ID, R], serialize SerializeFunc[R]) Handler {
	return &getHandler[ID, R]{
		parse:     parse,
		find:      find,
		serialize: serialize,
	}
}

type getHandler[ID, R any] struct {
	parse     IDParser[ID]
	find      FindFunc[ID, R]
	serialize SerializeFunc[R]
}

func (h *getHandler[ID, R]) Handle(ctx context.Context, r *http.Request) (Response, error) {
	return HandleGet(ctx, r, h.parse, h.find, h.serialize)
}

func (h *getHandler[ID, R]) Operation() openapi3.Operation {
	return openapi3.Operation{
		Responses: openapi3.Responses{
			MapOfResponseOrRefValues: map[string]openapi3.ResponseOrRef{
				"200": resourceResponse("The resource along with its current ETag."),
				"400": apiErrorResponse("The resource ID is invalid."),
				"404": apiErrorResponse("The resource does not exist."),
				"500": apiErrorResponse("An unexpected error occurred."),
			},
		},
	}
}
