// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/z5labs/ordering/result"
)

// ErrNotObject is returned when a document does not hold a JSON object
// at its root.
var ErrNotObject = errors.New("jsonx: document is not a JSON object")

// Marshal encodes n. Object properties are written in order.
func Marshal(n Node) ([]byte, error) {
	var buf bytes.Buffer
	err := encode(&buf, n)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
func (o Object) MarshalJSON() ([]byte, error) {
	return Marshal(o)
}

// MarshalJSON implements the [json.Marshaler] interface.
func (a Array) MarshalJSON() ([]byte, error) {
	return Marshal(a)
}

// MarshalJSON implements the [json.Marshaler] interface.
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v)
}

// WriteTo implements the [io.WriterTo] interface.
func (o Object) WriteTo(w io.Writer) (int64, error) {
	b, err := Marshal(o)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

func encode(buf *bytes.Buffer, n Node) error {
	switch n := n.(type) {
	case nil:
		buf.WriteString("null")
	case Object:
		buf.WriteByte('{')
		for i, p := range n.props {
			if i > 0 {
				buf.WriteByte(',')
			}
			err := encodePrimitive(buf, p.Key)
			if err != nil {
				return err
			}
			buf.WriteByte(':')
			err = encode(buf, p.Value)
			if err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case Array:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			err := encode(buf, item)
			if err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Value:
		return encodeValue(buf, n)
	default:
		return fmt.Errorf("jsonx: unknown node type %T", n)
	}
	return nil
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindBool:
		return encodePrimitive(buf, v.b)
	case KindInt:
		return encodePrimitive(buf, v.i)
	case KindFloat:
		return encodePrimitive(buf, v.f)
	case KindString:
		return encodePrimitive(buf, v.s)
	case KindDateTime:
		return encodePrimitive(buf, v.t.Format(time.RFC3339Nano))
	case KindGUID:
		return encodePrimitive(buf, v.g.String())
	case KindChar:
		return encodePrimitive(buf, string(v.c))
	default:
		return fmt.Errorf("jsonx: cannot encode value of kind %s", v.kind)
	}
}

func encodePrimitive(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// Parse decodes a single JSON document from b.
func Parse(b []byte) (Node, error) {
	return decodeDocument(bytes.NewReader(b))
}

// ParseObject decodes a single JSON object from r.
func ParseObject(r io.Reader) (Object, error) {
	n, err := decodeDocument(r)
	if err != nil {
		return Object{}, err
	}
	obj, ok := n.(Object)
	if !ok {
		return Object{}, ErrNotObject
	}
	return obj, nil
}

// TryParseObject is like [ParseObject] but reports failure as a message.
func TryParseObject(r io.Reader) result.Either[string, Object] {
	if r == nil {
		return result.Left[string, Object]("Stream cannot be null.")
	}
	obj, err := ParseObject(r)
	if err != nil {
		return result.Left[string, Object]("Cannot deserialize stream to JSON object.")
	}
	return result.Right[string](obj)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (o *Object) UnmarshalJSON(b []byte) error {
	obj, err := ParseObject(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*o = obj
	return nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (a *Array) UnmarshalJSON(b []byte) error {
	n, err := Parse(b)
	if err != nil {
		return err
	}
	arr, ok := n.(Array)
	if !ok {
		return errors.New("jsonx: document is not a JSON array")
	}
	*a = arr
	return nil
}

func decodeDocument(r io.Reader) (Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	n, err := decode(dec)
	if err != nil {
		return nil, err
	}
	_, err = dec.Token()
	if err != io.EOF {
		return nil, errors.New("jsonx: unexpected data after JSON document")
	}
	return n, nil
}

func decode(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case nil:
		return nil, nil
	case bool:
		return Bool(tok), nil
	case string:
		return String(tok), nil
	case json.Number:
		if i, err := tok.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := tok.Float64()
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case json.Delim:
		switch tok {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
	}
	return nil, fmt.Errorf("jsonx: unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (Node, error) {
	var props []Property
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("jsonx: unexpected object key %v", tok)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("jsonx: duplicate object key %q", key)
		}
		seen[key] = struct{}{}

		value, err := decode(dec)
		if err != nil {
			return nil, err
		}
		props = append(props, Property{Key: key, Value: value})
	}

	// closing brace
	_, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return Object{props: props}, nil
}

func decodeArray(dec *json.Decoder) (Node, error) {
	var items []Node
	for dec.More() {
		item, err := decode(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	_, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return Array{items: items}, nil
}
