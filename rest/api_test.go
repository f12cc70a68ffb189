// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/health"

	"github.com/stretchr/testify/require"
)

func TestNewApi(t *testing.T) {
	t.Run("will serve the openapi spec", func(t *testing.T) {
		api := NewApi("Widgets", "v2.3.1")

		w := serve(t, api, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var spec struct {
			OpenApi string `json:"openapi"`
			Info    struct {
				Title   string `json:"title"`
				Version string `json:"version"`
			} `json:"info"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spec))
		require.Equal(t, "3.0.3", spec.OpenApi)
		require.Equal(t, "Widgets", spec.Info.Title)
		require.Equal(t, "v2.3.1", spec.Info.Version)
	})

	t.Run("will send an api error for unknown routes", func(t *testing.T) {
		api := NewApi("Widgets", "v1")

		w := serve(t, api, httptest.NewRequest(http.MethodGet, "/gadgets/1", nil))
		requireApiErrorBody(t, w, http.StatusNotFound, apierror.ResourceNotFound, "No route matches /gadgets/1")
	})

	t.Run("will use a custom not found handler", func(t *testing.T) {
		api := NewApi("Widgets", "v1", NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGone)
		})))

		w := serve(t, api, httptest.NewRequest(http.MethodGet, "/gadgets/1", nil))
		require.Equal(t, http.StatusGone, w.Code)
	})

	t.Run("will use a custom method not allowed handler", func(t *testing.T) {
		api := NewApi(
			"Widgets",
			"v1",
			Handle(http.MethodGet, BasePath("/widgets").Param("id"), Get(parseIntID, nil, serializeWidget)),
			MethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})),
		)

		w := serve(t, api, httptest.NewRequest(http.MethodPost, "/widgets/1", nil))
		require.Equal(t, http.StatusTeapot, w.Code)
	})
}

func TestNewApi_health(t *testing.T) {
	unhealthy := &health.Binary{}
	failing := health.MonitorFunc(func(context.Context) (bool, error) {
		return true, errors.New("probe failed")
	})

	testCases := []struct {
		Name   string
		Opts   []ApiOption
		Path   string
		Status int
	}{
		{Name: "liveness defaults to healthy", Path: "/health/liveness", Status: http.StatusOK},
		{Name: "readiness defaults to healthy", Path: "/health/readiness", Status: http.StatusOK},
		{Name: "liveness reports an unhealthy monitor", Opts: []ApiOption{Liveness(unhealthy)}, Path: "/health/liveness", Status: http.StatusServiceUnavailable},
		{Name: "readiness reports an unhealthy monitor", Opts: []ApiOption{Readiness(unhealthy)}, Path: "/health/readiness", Status: http.StatusServiceUnavailable},
		{Name: "readiness reports a failing monitor", Opts: []ApiOption{Readiness(failing)}, Path: "/health/readiness", Status: http.StatusServiceUnavailable},
		{Name: "readiness reports an unhealthy liveness monitor", Opts: []ApiOption{Liveness(unhealthy)}, Path: "/health/readiness", Status: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			api := NewApi("Widgets", "v1", tc.Opts...)

			w := serve(t, api, httptest.NewRequest(http.MethodGet, tc.Path, nil))
			require.Equal(t, tc.Status, w.Code)
		})
	}
}
