// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"net/http"
	"strings"

	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/result"
)

// If-Match validation messages.
const (
	IfMatchRequired = "'If-Match' header must be specified."
	IfMatchBlank    = "'If-Match' header cannot be empty or whitespace."
	IfMatchMultiple = "Must specify exactly one 'If-Match' header."

	// IfMatchNull is reserved for transports which can carry a null header
	// value. [IfMatch] never returns it since an [http.Header] cannot.
	IfMatchNull = "'If-Match' header cannot be null."
)

// IDParser converts the trailing path segment of a request into a typed
// resource ID. On failure it returns the message sent to the client.
type IDParser[ID any] func(string) result.Either[string, ID]

// LastPathSegment returns the final '/' delimited segment of the
// request path. Trailing slashes are ignored.
func LastPathSegment(r *http.Request) string {
	p := strings.TrimRight(r.URL.Path, "/")
	i := strings.LastIndexByte(p, '/')
	return p[i+1:]
}

func parseRequestID[ID any](r *http.Request, parse IDParser[ID]) result.Either[Response, ID] {
	return result.MapLeft(parse(LastPathSegment(r)), func(msg string) Response {
		return FromError(apierror.BadRequest(apierror.InvalidId, msg))
	})
}

// IfMatch extracts the single ETag supplied in the If-Match header.
//
// An absent header results in a 428 response. A blank value, or more than one
// value, results in a 400 response. Values may be sent on separate header
// lines or as a comma separated list. Empty list elements are ignored. A
// value wrapped in double quotes is unquoted.
func IfMatch(h http.Header) result.Either[Response, etag.ETag] {
	lines, ok := h[http.CanonicalHeaderKey("If-Match")]
	if !ok {
		return result.Left[Response, etag.ETag](invalidConditionalHeader(http.StatusPreconditionRequired, IfMatchRequired))
	}

	var values []string
	for _, line := range lines {
		for _, v := range splitList(line) {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			values = append(values, v)
		}
	}

	switch len(values) {
	case 0:
		return result.Left[Response, etag.ETag](invalidConditionalHeader(http.StatusBadRequest, IfMatchBlank))
	case 1:
		tag, err := etag.New(unquote(values[0]))
		if err != nil {
			return result.Left[Response, etag.ETag](invalidConditionalHeader(http.StatusBadRequest, IfMatchBlank))
		}
		return result.Right[Response](tag)
	default:
		return result.Left[Response, etag.ETag](invalidConditionalHeader(http.StatusBadRequest, IfMatchMultiple))
	}
}

func invalidConditionalHeader(status int, msg string) Response {
	return FromError(apierror.New(apierror.InvalidConditionalHeader, msg).WithStatus(status))
}

// splitList splits a header value on commas which are not inside a
// quoted string.
func splitList(s string) []string {
	var (
		values []string
		quoted bool
		start  int
	)
	for i, c := range s {
		switch {
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			values = append(values, s[start:i])
			start = i + 1
		}
	}
	return append(values, s[start:])
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
