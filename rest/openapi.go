// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi3"
)

type apiErrorDetailSchema struct {
	Code    string `json:"code" required:"true" enum:"ResourceNotFound,ResourceAlreadyExists,InvalidConditionalHeader,InvalidJsonBody,InvalidId,ETagMismatch,InternalServerError"`
	Message string `json:"message" required:"true"`
}

type apiErrorSchema struct {
	apiErrorDetailSchema

	Details []apiErrorDetailSchema `json:"details,omitempty"`
}

type resourceSchema struct {
	ETag string `json:"eTag" required:"true" description:"The current version of the resource."`
}

func reflectSchema(v any) *openapi3.SchemaOrRef {
	var reflector jsonschema.Reflector

	jsonSchema, err := reflector.Reflect(v, jsonschema.InlineRefs)
	if err != nil {
		panic(err)
	}

	var schemaOrRef openapi3.SchemaOrRef
	schemaOrRef.FromJSONSchema(jsonSchema.ToSchemaOrBool())
	return &schemaOrRef
}

func stringSchema() *openapi3.SchemaOrRef {
	return reflectSchema("")
}

func jsonResponse(description string, schema *openapi3.SchemaOrRef) openapi3.ResponseOrRef {
	return openapi3.ResponseOrRef{
		Response: &openapi3.Response{
			Description: description,
			Content: map[string]openapi3.MediaType{
				"application/json": {
					Schema: schema,
				},
			},
		},
	}
}

func apiErrorResponse(description string) openapi3.ResponseOrRef {
	return jsonResponse(description, reflectSchema(apiErrorSchema{}))
}

func resourceResponse(description string) openapi3.ResponseOrRef {
	return jsonResponse(description, reflectSchema(resourceSchema{}))
}
