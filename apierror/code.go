// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package apierror

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Code classifies an [ApiError]. The set of codes is closed and each code
// is encoded on the wire as its name.
type Code int

// The API error codes.
const (
	ResourceNotFound Code = iota + 1
	ResourceAlreadyExists
	InvalidConditionalHeader
	InvalidJsonBody
	InvalidId
	ETagMismatch
	InternalServerError
)

var codeNames = map[Code]string{
	ResourceNotFound:         "ResourceNotFound",
	ResourceAlreadyExists:    "ResourceAlreadyExists",
	InvalidConditionalHeader: "InvalidConditionalHeader",
	InvalidJsonBody:          "InvalidJsonBody",
	InvalidId:                "InvalidId",
	ETagMismatch:             "ETagMismatch",
	InternalServerError:      "InternalServerError",
}

// Codes returns every defined code in declaration order.
func Codes() []Code {
	return []Code{
		ResourceNotFound,
		ResourceAlreadyExists,
		InvalidConditionalHeader,
		InvalidJsonBody,
		InvalidId,
		ETagMismatch,
		InternalServerError,
	}
}

// String returns the wire name of c.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Valid reports whether c is one of the defined codes.
func (c Code) Valid() bool {
	_, ok := codeNames[c]
	return ok
}

// ParseCode returns the code named s.
func ParseCode(s string) (Code, error) {
	for code, name := range codeNames {
		if name == s {
			return code, nil
		}
	}
	return 0, fmt.Errorf("'%s' is not a valid API error code.", s)
}

// MarshalJSON implements the [json.Marshaler] interface.
func (c Code) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("apierror: cannot encode unknown code %d", int(c))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (c *Code) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	code, err := ParseCode(s)
	if err != nil {
		return err
	}
	*c = code
	return nil
}
