// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"path"

	"github.com/swaggest/openapi-go/openapi3"
	"github.com/z5labs/sdk-go/ptr"
)

type pathElement interface {
	String() string
}

type pathSegment string

func (s pathSegment) String() string {
	return string(s)
}

type pathParam string

func (p pathParam) String() string {
	return "{" + string(p) + "}"
}

// Path is a route made of static segments and named parameters, e.g.
//
//	rest.BasePath("/v1/orders").Param("orderId") // /v1/orders/{orderId}
type Path []pathElement

// BasePath starts a [Path] at s.
func BasePath(s string) Path {
	return Path{pathSegment(s)}
}

// Segment appends a static segment.
func (p Path) Segment(s string) Path {
	return append(p[:len(p):len(p)], pathSegment(s))
}

// Param appends a named path parameter.
func (p Path) Param(name string) Path {
	return append(p[:len(p):len(p)], pathParam(name))
}

// String returns the route pattern.
func (p Path) String() string {
	ss := make([]string, len(p))
	for i, el := range p {
		ss[i] = el.String()
	}
	return path.Join(ss...)
}

func (p Path) parameters() []openapi3.ParameterOrRef {
	var params []openapi3.ParameterOrRef
	for _, el := range p {
		name, ok := el.(pathParam)
		if !ok {
			continue
		}
		params = append(params, openapi3.ParameterOrRef{
			Parameter: &openapi3.Parameter{
				Name:     string(name),
				In:       openapi3.ParameterInPath,
				Required: ptr.Ref(true),
				Schema:   stringSchema(),
			},
		})
	}
	return params
}
