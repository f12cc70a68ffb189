// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package order

import (
	"testing"

	"github.com/z5labs/ordering/jsonx"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Run("will return the id", func(t *testing.T) {
		u := uuid.New()

		id, ok := ParseID(u.String()).Right()
		require.True(t, ok)
		require.Equal(t, IDFromUUID(u), id)
		require.Equal(t, u.String(), id.String())
	})

	t.Run("will return a message", func(t *testing.T) {
		testCases := []string{"", "abc", "123", "not-a-guid-at-all-but-long-enough-0000"}
		for _, tc := range testCases {
			t.Run("if the id is "+tc, func(t *testing.T) {
				msg, failed := ParseID(tc).Left()
				require.True(t, failed)
				require.Equal(t, InvalidIDMessage, msg)
			})
		}
	})
}

func TestOrder_JSON(t *testing.T) {
	o := Order{ID: NewID()}

	b, err := jsonx.Marshal(o.JSON())
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"`+o.ID.String()+`"}`, string(b))
}

func TestFromJSON(t *testing.T) {
	t.Run("will decode an encoded order", func(t *testing.T) {
		o := Order{ID: NewID()}

		b, err := jsonx.Marshal(o.JSON())
		require.NoError(t, err)

		n, err := jsonx.Parse(b)
		require.NoError(t, err)

		obj, ok := n.(jsonx.Object)
		require.True(t, ok)

		decoded, ok := FromJSON(obj).Right()
		require.True(t, ok)
		require.Equal(t, o, decoded)
	})

	t.Run("will fail if the id is missing", func(t *testing.T) {
		msg, failed := FromJSON(jsonx.NewObject()).Left()
		require.True(t, failed)
		require.Equal(t, "Property 'id' is missing.", msg)
	})

	t.Run("will fail if the id is not a guid", func(t *testing.T) {
		obj := jsonx.NewObject(jsonx.Property{Key: "id", Value: jsonx.Int(1)})

		msg, failed := FromJSON(obj).Left()
		require.True(t, failed)
		require.Equal(t, "Property 'id''s value cannot be converted to Guid.", msg)
	})
}
