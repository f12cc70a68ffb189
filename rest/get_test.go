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
	"strconv"
	"testing"

	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/jsonx"
	"github.com/z5labs/ordering/result"

	"github.com/stretchr/testify/require"
)

const invalidIntID = "ID must be an integer."

func parseIntID(s string) result.Either[string, int] {
	i, err := strconv.Atoi(s)
	if err != nil {
		return result.Left[string, int](invalidIntID)
	}
	return result.Right[string](i)
}

type widget struct {
	ID   int
	Name string
}

func serializeWidget(w widget) jsonx.Object {
	return jsonx.NewObject(
		jsonx.Property{Key: "id", Value: jsonx.Int(int64(w.ID))},
		jsonx.Property{Key: "name", Value: jsonx.String(w.Name)},
		jsonx.Property{Key: "eTag", Value: jsonx.String("stale")},
	)
}

func TestHandleGet(t *testing.T) {
	t.Run("will return a bad request without calling find", func(t *testing.T) {
		find := func(context.Context, int) (result.Option[Found[widget]], error) {
			t.Fatal("find should not be called")
			return result.None[Found[widget]](), nil
		}

		r := httptest.NewRequest(http.MethodGet, "/widgets/abc", nil)
		resp, err := HandleGet(context.Background(), r, parseIntID, find, serializeWidget)
		require.NoError(t, err)
		requireApiError(t, resp, http.StatusBadRequest, apierror.InvalidId, invalidIntID)
	})

	t.Run("will return not found if the resource does not exist", func(t *testing.T) {
		var found int
		find := func(_ context.Context, id int) (result.Option[Found[widget]], error) {
			found = id
			return result.None[Found[widget]](), nil
		}

		r := httptest.NewRequest(http.MethodGet, "/widgets/7", nil)
		resp, err := HandleGet(context.Background(), r, parseIntID, find, serializeWidget)
		require.NoError(t, err)
		require.Equal(t, 7, found)
		requireApiError(t, resp, http.StatusNotFound, apierror.ResourceNotFound, ResourceNotFoundMessage)
	})

	t.Run("will return the resource with its etag", func(t *testing.T) {
		find := func(_ context.Context, id int) (result.Option[Found[widget]], error) {
			return result.Some(Found[widget]{
				Resource: widget{ID: id, Name: "sprocket"},
				ETag:     etag.MustNew("abc"),
			}), nil
		}

		r := httptest.NewRequest(http.MethodGet, "/widgets/7", nil)
		resp, err := HandleGet(context.Background(), r, parseIntID, find, serializeWidget)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		b, err := jsonx.Marshal(resp.Body)
		require.NoError(t, err)
		require.Equal(t, `{"id":7,"name":"sprocket","eTag":"abc"}`, string(b))
	})

	t.Run("will pass the request context to find", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "value")

		find := func(ctx context.Context, _ int) (result.Option[Found[widget]], error) {
			require.Equal(t, "value", ctx.Value(key{}))
			return result.None[Found[widget]](), nil
		}

		r := httptest.NewRequest(http.MethodGet, "/widgets/7", nil)
		_, err := HandleGet(ctx, r, parseIntID, find, serializeWidget)
		require.NoError(t, err)
	})

	t.Run("will return an error if find fails", func(t *testing.T) {
		findErr := errors.New("connection refused")
		find := func(context.Context, int) (result.Option[Found[widget]], error) {
			return result.Option[Found[widget]]{}, findErr
		}

		r := httptest.NewRequest(http.MethodGet, "/widgets/7", nil)
		_, err := HandleGet(context.Background(), r, parseIntID, find, serializeWidget)
		require.ErrorIs(t, err, findErr)
	})
}
