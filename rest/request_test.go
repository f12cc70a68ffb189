// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/jsonx"

	"github.com/stretchr/testify/require"
)

func TestLastPathSegment(t *testing.T) {
	testCases := map[string]string{
		"/v1/orders/abc":  "abc",
		"/v1/orders/abc/": "abc",
		"/abc":            "abc",
		"/":               "",
		"/v1/orders//":    "orders",
	}
	for path, expected := range testCases {
		t.Run(path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, path, nil)
			require.Equal(t, expected, LastPathSegment(r))
		})
	}
}

func requireApiError(t *testing.T, resp Response, status int, code apierror.Code, msg string) {
	t.Helper()

	require.Equal(t, status, resp.StatusCode)

	body, ok := resp.Body.(jsonx.Object)
	require.True(t, ok, "response body is not a json object")

	e, err := apierror.FromJSON(body)
	require.NoError(t, err)
	require.Equal(t, code, e.Code)
	require.Equal(t, msg, e.Message)
}

func TestIfMatch(t *testing.T) {
	t.Run("will return the etag", func(t *testing.T) {
		testCases := []struct {
			Name   string
			Header http.Header
			ETag   string
		}{
			{Name: "if a single value is given", Header: http.Header{"If-Match": {"abc"}}, ETag: "abc"},
			{Name: "if the value is quoted", Header: http.Header{"If-Match": {`"abc"`}}, ETag: "abc"},
			{Name: "if the value has surrounding whitespace", Header: http.Header{"If-Match": {"  abc "}}, ETag: "abc"},
			{Name: "if a quoted value contains a comma", Header: http.Header{"If-Match": {`"a,b"`}}, ETag: "a,b"},
			{Name: "if a quoted value has a trailing comma", Header: http.Header{"If-Match": {`"abc", `}}, ETag: "abc"},
			{Name: "if a value has a trailing comma", Header: http.Header{"If-Match": {"abc,"}}, ETag: "abc"},
			{Name: "if the list has empty elements", Header: http.Header{"If-Match": {",, abc ,", ""}}, ETag: "abc"},
		}
		for _, tc := range testCases {
			t.Run(tc.Name, func(t *testing.T) {
				tag, ok := IfMatch(tc.Header).Right()
				require.True(t, ok)
				require.Equal(t, etag.MustNew(tc.ETag), tag)
			})
		}
	})

	t.Run("will fail", func(t *testing.T) {
		testCases := []struct {
			Name    string
			Header  http.Header
			Status  int
			Message string
		}{
			{
				Name:    "if the header is absent",
				Header:  http.Header{},
				Status:  http.StatusPreconditionRequired,
				Message: IfMatchRequired,
			},
			{
				Name:    "if the header has no values",
				Header:  http.Header{"If-Match": {}},
				Status:  http.StatusBadRequest,
				Message: IfMatchBlank,
			},
			{
				Name:    "if the value is empty",
				Header:  http.Header{"If-Match": {""}},
				Status:  http.StatusBadRequest,
				Message: IfMatchBlank,
			},
			{
				Name:    "if the value is whitespace",
				Header:  http.Header{"If-Match": {"   "}},
				Status:  http.StatusBadRequest,
				Message: IfMatchBlank,
			},
			{
				Name:    "if the list only has empty elements",
				Header:  http.Header{"If-Match": {" , ,"}},
				Status:  http.StatusBadRequest,
				Message: IfMatchBlank,
			},
			{
				Name:    "if the value is an empty quoted string",
				Header:  http.Header{"If-Match": {`""`}},
				Status:  http.StatusBadRequest,
				Message: IfMatchBlank,
			},
			{
				Name:    "if the header is sent twice",
				Header:  http.Header{"If-Match": {"abc", "def"}},
				Status:  http.StatusBadRequest,
				Message: IfMatchMultiple,
			},
			{
				Name:    "if the header is a list",
				Header:  http.Header{"If-Match": {`"abc", "def"`}},
				Status:  http.StatusBadRequest,
				Message: IfMatchMultiple,
			},
		}
		for _, tc := range testCases {
			t.Run(tc.Name, func(t *testing.T) {
				resp, failed := IfMatch(tc.Header).Left()
				require.True(t, failed)
				requireApiError(t, resp, tc.Status, apierror.InvalidConditionalHeader, tc.Message)
			})
		}
	})
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{""}, splitList(""))
	require.Equal(t, []string{"a", " b"}, splitList("a, b"))
	require.Equal(t, []string{`"a,b"`, `"c"`}, splitList(`"a,b","c"`))
}
