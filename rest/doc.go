// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package rest serves versioned JSON resources over HTTP.
//
// An [Api] is a chi router with an OpenAPI 3.0 document built from the
// operations registered on it with [Handle]. [Get] and [Delete] build the
// handlers for reading and conditionally deleting a resource identified by
// the last segment of the request path:
//
//	api := rest.NewApi(
//		"Orders",
//		"v1",
//		rest.Handle(
//			http.MethodGet,
//			rest.BasePath("/v1/orders").Param("orderId"),
//			rest.Get(parseOrderID, findOrder, serializeOrder),
//		),
//	)
//
// Every failure is sent as an [apierror.ApiError] body. Errors which do not
// carry their own status, and panics, become a 500 InternalServerError.
package rest
