// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/z5labs/ordering"
	"github.com/z5labs/ordering/apierror"
	"github.com/z5labs/ordering/health"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/openapi-go/openapi3"
)

// ApiOptions holds the router and OpenAPI spec an [ApiOption] configures.
type ApiOptions struct {
	mux       *chi.Mux
	def       *openapi3.Spec
	readiness health.Monitor
	liveness  health.Monitor
}

// ApiOption configures an [Api], e.g. [Handle].
type ApiOption interface {
	ApplyApiOption(*ApiOptions)
}

type apiOptionFunc func(*ApiOptions)

func (f apiOptionFunc) ApplyApiOption(ao *ApiOptions) {
	f(ao)
}

// Readiness sets the monitor backing GET /health/readiness. The API is
// only ready while it is also live.
func Readiness(m health.Monitor) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		ao.readiness = m
	})
}

// Liveness sets the monitor backing GET /health/liveness.
func Liveness(m health.Monitor) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		ao.liveness = m
	})
}

// NotFound overrides the handler for requests which match no route.
func NotFound(h http.Handler) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		ao.mux.NotFound(h.ServeHTTP)
	})
}

// MethodNotAllowed overrides the handler for requests to a known route
// with an unsupported method.
func MethodNotAllowed(h http.Handler) ApiOption {
	return apiOptionFunc(func(ao *ApiOptions) {
		ao.mux.MethodNotAllowed(h.ServeHTTP)
	})
}

// Api is an [http.Handler] serving the registered operations.
//
// Every Api also serves:
//   - its OpenAPI 3.0 spec at GET /openapi.json
//   - a liveness probe at GET /health/liveness
//   - a readiness probe at GET /health/readiness, which also requires liveness
//   - an [apierror.ResourceNotFound] error for unknown routes
type Api struct {
	router *chi.Mux
}

// NewApi returns an [Api] described by title and version.
func NewApi(title, version string, opts ...ApiOption) *Api {
	log := ordering.Logger(instrumentationName)

	alive := &health.Binary{}
	alive.MarkHealthy()

	ao := &ApiOptions{
		mux: chi.NewMux(),
		def: &openapi3.Spec{
			Openapi: "3.0.3",
			Info: openapi3.Info{
				Title:   title,
				Version: version,
			},
		},
		readiness: alive,
		liveness:  alive,
	}
	ao.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierror.NotFound("No route matches "+r.URL.Path).WriteHttpResponse(r.Context(), w)
	})
	for _, opt := range opts {
		opt.ApplyApiOption(ao)
	}

	ao.mux.Get("/health/liveness", probe(log, ao.liveness))
	ao.mux.Get("/health/readiness", probe(log, health.And(ao.liveness, ao.readiness)))
	ao.mux.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		enc := json.NewEncoder(w)
		err := enc.Encode(ao.def)
		if err == nil {
			return
		}
		log.ErrorContext(
			r.Context(),
			"failed to encode openapi schema to json",
			slog.Any("error", err),
		)
	})

	return &Api{
		router: ao.mux,
	}
}

func probe(log *slog.Logger, m health.Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		healthy, err := m.Healthy(r.Context())
		if err != nil {
			log.ErrorContext(r.Context(), "health check failed", slog.Any("error", err))
		}
		if !healthy || err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// ServeHTTP implements the [http.Handler] interface.
func (api *Api) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	api.router.ServeHTTP(w, req)
}
