// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package apierror defines the structured error returned by the API.
//
// On the wire an [ApiError] is encoded as:
//
//	{"code": "<Code>", "message": "<string>", "details": [<ApiError>, ...]}
//
// where details is omitted when empty.
package apierror

import (
	"context"
	"net/http"
	"strings"
)

// ApiError describes a failure with a [Code], a human readable message
// and optional nested details, e.g. one per invalid field.
type ApiError struct {
	Code    Code
	Message string
	Details []ApiError
}

// New returns an [ApiError]. An empty details list is stored as nil.
func New(code Code, message string, details ...ApiError) ApiError {
	if len(details) == 0 {
		details = nil
	}
	return ApiError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Error implements the [error] interface.
func (e ApiError) Error() string {
	return e.Code.String() + ": " + e.Message
}

// WithStatus pairs e with an HTTP status code.
func (e ApiError) WithStatus(status int) WithStatusCode {
	return WithStatusCode{ApiError: e, StatusCode: status}
}

// WithStatusCode is an [ApiError] along with the HTTP status it should be
// sent with. It is the only error shape written to API clients.
type WithStatusCode struct {
	ApiError
	StatusCode int
}

// Error implements the [error] interface.
func (e WithStatusCode) Error() string {
	return http.StatusText(e.StatusCode) + ": " + e.ApiError.Error()
}

// WriteHttpResponse writes e as a JSON response body with its status code.
func (e WithStatusCode) WriteHttpResponse(ctx context.Context, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	e.JSON().WriteTo(w)
}

// DecodeError is returned when a JSON object cannot be decoded into an
// [ApiError]. It carries every problem found, not just the first.
type DecodeError struct {
	Errors []string
}

// Error implements the [error] interface.
func (e *DecodeError) Error() string {
	return "Could not deserialize API errors. " + strings.Join(e.Errors, "; ")
}

// NotFound returns a 404 [ResourceNotFound] error.
func NotFound(message string) WithStatusCode {
	return New(ResourceNotFound, message).WithStatus(http.StatusNotFound)
}

// BadRequest returns a 400 error with code.
func BadRequest(code Code, message string) WithStatusCode {
	return New(code, message).WithStatus(http.StatusBadRequest)
}

// Internal returns the 500 error sent for any unexpected failure.
func Internal() WithStatusCode {
	return New(InternalServerError, "An error has occurred.").WithStatus(http.StatusInternalServerError)
}
