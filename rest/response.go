// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"net/http"

	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/jsonx"
)

// Response is the outcome of a handler: a status code and an optional
// JSON body. A nil Body means the response has no body.
type Response struct {
	StatusCode int
	Body       jsonx.Node
}

// Ok returns a 200 response with body.
func Ok(body jsonx.Object) Response {
	return Response{
		StatusCode: http.StatusOK,
		Body:       body,
	}
}

// NoContent returns a 204 response.
func NoContent() Response {
	return Response{StatusCode: http.StatusNoContent}
}

// FromError returns a response carrying e as its body.
func FromError(e apierror.WithStatusCode) Response {
	return Response{
		StatusCode: e.StatusCode,
		Body:       e.JSON(),
	}
}

// WriteHttpResponse writes resp to w.
func (resp Response) WriteHttpResponse(ctx context.Context, w http.ResponseWriter) error {
	b, err := resp.encode()
	if err != nil {
		return err
	}
	return resp.write(w, b)
}

// encode marshals the body, if any. It fails before anything is written.
func (resp Response) encode() ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}
	return jsonx.Marshal(resp.Body)
}

// write sends the status line and b. Once it is called the status is
// committed, so its error cannot be turned into another response.
func (resp Response) write(w http.ResponseWriter, b []byte) error {
	if resp.Body == nil {
		w.WriteHeader(resp.StatusCode)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, err := w.Write(b)
	return err
}
