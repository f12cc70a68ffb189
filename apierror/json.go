// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package apierror

import (
	"bytes"

	"github.com/z5labs/ordering/jsonx"
	"github.com/z5labs/ordering/result"
)

// JSON encodes e as a JSON object.
func (e ApiError) JSON() jsonx.Object {
	obj := jsonx.NewObject(
		jsonx.Property{Key: "code", Value: jsonx.String(e.Code.String())},
		jsonx.Property{Key: "message", Value: jsonx.String(e.Message)},
	)
	if len(e.Details) == 0 {
		return obj
	}
	details := jsonx.ToArray(e.Details, func(d ApiError) jsonx.Node {
		return d.JSON()
	})
	return obj.AddProperty("details", details)
}

// FromJSON decodes an [ApiError]. The code, message and details are each
// validated and every failure is reported in the returned [*DecodeError].
func FromJSON(obj jsonx.Object) (ApiError, error) {
	v := decode(obj)
	if !v.IsValid() {
		return ApiError{}, &DecodeError{Errors: v.Errors()}
	}
	e, _ := v.Value()
	return e, nil
}

func decode(obj jsonx.Object) result.Validation[ApiError] {
	code := result.ToValidation(result.Bind(obj.TryGetProperty("code"), decodeCode))
	message := result.ToValidation(obj.TryGetString("message"))
	details := decodeDetails(obj)

	return result.Apply3(code, message, details, func(c Code, m string, d []ApiError) ApiError {
		return New(c, m, d...)
	})
}

func decodeCode(n jsonx.Node) result.Either[string, Code] {
	v, ok := n.(jsonx.Value)
	if !ok {
		return result.Left[string, Code]("Failed to deserialize API error code.")
	}
	s, ok := v.StringValue()
	if !ok {
		return result.Left[string, Code]("Failed to deserialize API error code.")
	}
	code, err := ParseCode(s)
	if err != nil {
		return result.Left[string, Code](err.Error())
	}
	return result.Right[string](code)
}

func decodeDetails(obj jsonx.Object) result.Validation[[]ApiError] {
	objs := result.Map(obj.TryGetOptionalObjectArray("details"), func(o result.Option[[]jsonx.Object]) []jsonx.Object {
		return o.IfNone(nil)
	})

	return result.BindValidation(result.ToValidation(objs), func(objs []jsonx.Object) result.Validation[[]ApiError] {
		details := result.Traverse(objs, func(_ int, o jsonx.Object) result.Validation[ApiError] {
			return decode(o)
		})
		if details.IsValid() {
			return details
		}
		errs := append([]string{"Property 'details' must be an array of API errors."}, details.Errors()...)
		return result.Invalid[[]ApiError](errs...)
	})
}

// MarshalJSON implements the [json.Marshaler] interface.
func (e ApiError) MarshalJSON() ([]byte, error) {
	return jsonx.Marshal(e.JSON())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (e *ApiError) UnmarshalJSON(b []byte) error {
	obj, err := jsonx.ParseObject(bytes.NewReader(b))
	if err != nil {
		return err
	}
	decoded, err := FromJSON(obj)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}
