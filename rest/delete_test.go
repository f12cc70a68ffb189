// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/result"

	"github.com/stretchr/testify/require"
)

type deleteCall struct {
	id  int
	tag etag.ETag
}

func recordDeletes(calls *[]deleteCall, outcome result.Either[DeleteError, result.Unit], err error) DeleteFunc[int] {
	return func(_ context.Context, id int, tag etag.ETag) (result.Either[DeleteError, result.Unit], error) {
		*calls = append(*calls, deleteCall{id: id, tag: tag})
		return outcome, err
	}
}

func newDeleteRequest(path string, ifMatch ...string) *http.Request {
	r := httptest.NewRequest(http.MethodDelete, path, nil)
	for _, v := range ifMatch {
		r.Header.Add("If-Match", v)
	}
	return r
}

func TestHandleDelete(t *testing.T) {
	deleted := result.Right[DeleteError](result.Unit{})

	t.Run("will reject invalid requests without calling delete", func(t *testing.T) {
		testCases := []struct {
			Name    string
			Request *http.Request
			Status  int
			Code    apierror.Code
			Message string
		}{
			{
				Name:    "if the id is invalid",
				Request: newDeleteRequest("/widgets/abc", "tag"),
				Status:  http.StatusBadRequest,
				Code:    apierror.InvalidId,
				Message: invalidIntID,
			},
			{
				Name:    "if the id is invalid before checking the if-match header",
				Request: newDeleteRequest("/widgets/abc"),
				Status:  http.StatusBadRequest,
				Code:    apierror.InvalidId,
				Message: invalidIntID,
			},
			{
				Name:    "if the if-match header is missing",
				Request: newDeleteRequest("/widgets/1"),
				Status:  http.StatusPreconditionRequired,
				Code:    apierror.InvalidConditionalHeader,
				Message: IfMatchRequired,
			},
			{
				Name:    "if the if-match header is blank",
				Request: newDeleteRequest("/widgets/1", " "),
				Status:  http.StatusBadRequest,
				Code:    apierror.InvalidConditionalHeader,
				Message: IfMatchBlank,
			},
			{
				Name:    "if more than one if-match header is given",
				Request: newDeleteRequest("/widgets/1", "a", "b"),
				Status:  http.StatusBadRequest,
				Code:    apierror.InvalidConditionalHeader,
				Message: IfMatchMultiple,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.Name, func(t *testing.T) {
				var calls []deleteCall
				resp, err := HandleDelete(context.Background(), tc.Request, parseIntID, recordDeletes(&calls, deleted, nil))
				require.NoError(t, err)
				require.Empty(t, calls)
				requireApiError(t, resp, tc.Status, tc.Code, tc.Message)
			})
		}
	})

	t.Run("will return no content if the resource is deleted", func(t *testing.T) {
		var calls []deleteCall
		resp, err := HandleDelete(context.Background(), newDeleteRequest("/widgets/1", `"abc"`), parseIntID, recordDeletes(&calls, deleted, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		require.Nil(t, resp.Body)
		require.Equal(t, []deleteCall{{id: 1, tag: etag.MustNew("abc")}}, calls)
	})

	t.Run("will return precondition failed if the etag does not match", func(t *testing.T) {
		var calls []deleteCall
		mismatch := result.Left[DeleteError, result.Unit](ETagMismatch)

		resp, err := HandleDelete(context.Background(), newDeleteRequest("/widgets/1", "wrong"), parseIntID, recordDeletes(&calls, mismatch, nil))
		require.NoError(t, err)
		require.Len(t, calls, 1)
		requireApiError(t, resp, http.StatusPreconditionFailed, apierror.ETagMismatch, ETagMismatchMessage)
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if delete fails", func(t *testing.T) {
			var calls []deleteCall
			deleteErr := errors.New("timeout")

			_, err := HandleDelete(context.Background(), newDeleteRequest("/widgets/1", "abc"), parseIntID, recordDeletes(&calls, result.Either[DeleteError, result.Unit]{}, deleteErr))
			require.ErrorIs(t, err, deleteErr)
		})

		t.Run("if delete returns an unknown delete error", func(t *testing.T) {
			var calls []deleteCall
			unknown := result.Left[DeleteError, result.Unit](DeleteError(42))

			_, err := HandleDelete(context.Background(), newDeleteRequest("/widgets/1", "abc"), parseIntID, recordDeletes(&calls, unknown, nil))

			var uerr UnhandledDeleteError
			require.ErrorAs(t, err, &uerr)
			require.Equal(t, DeleteError(42), uerr.Err)
			require.Equal(t, "rest: unhandled delete error: DeleteError(42)", uerr.Error())
		})
	})
}

func TestDeleteError_String(t *testing.T) {
	require.Equal(t, "ETagMismatch", ETagMismatch.String())
	require.Equal(t, "DeleteError(0)", DeleteError(0).String())
}
