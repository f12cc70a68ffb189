// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package order

import (
	"context"
	"sync"
	"testing"

	"github.com/z5labs/ordering/etag"

	"github.com/stretchr/testify/require"
)

func TestStore_Find(t *testing.T) {
	t.Run("will return none if the order does not exist", func(t *testing.T) {
		s := NewStore()

		require.True(t, s.Find(context.Background(), NewID()).IsNone())
	})

	t.Run("will return seeded orders", func(t *testing.T) {
		o := Order{ID: NewID()}
		s := NewStore(o)

		v, ok := s.Find(context.Background(), o.ID).Get()
		require.True(t, ok)
		require.Equal(t, o, v.Order)
		require.False(t, v.ETag.IsZero())
	})
}

func TestStore_Put(t *testing.T) {
	t.Run("will generate a new etag for every version", func(t *testing.T) {
		ctx := context.Background()
		o := Order{ID: NewID()}
		s := NewStore()

		first := s.Put(ctx, o)
		second := s.Put(ctx, o)
		require.NotEqual(t, first, second)

		v, ok := s.Find(ctx, o.ID).Get()
		require.True(t, ok)
		require.Equal(t, second, v.ETag)
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("will remove the order if the etag matches", func(t *testing.T) {
		o := Order{ID: NewID()}
		s := NewStore()
		tag := s.Put(ctx, o)

		err := s.Delete(ctx, o.ID, tag)
		require.NoError(t, err)
		require.True(t, s.Find(ctx, o.ID).IsNone())
	})

	t.Run("will succeed if the order does not exist", func(t *testing.T) {
		s := NewStore()

		err := s.Delete(ctx, NewID(), etag.MustNew("abc"))
		require.NoError(t, err)
	})

	t.Run("will keep the order if the etag is stale", func(t *testing.T) {
		o := Order{ID: NewID()}
		s := NewStore(o)

		err := s.Delete(ctx, o.ID, etag.MustNew("wrong"))
		require.ErrorIs(t, err, ErrETagMismatch)
		require.True(t, s.Find(ctx, o.ID).IsSome())
	})

	t.Run("will be safe for concurrent deletes of the same version", func(t *testing.T) {
		o := Order{ID: NewID()}
		s := NewStore()
		tag := s.Put(ctx, o)

		var wg sync.WaitGroup
		errs := make(chan error, 10)
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.Delete(ctx, o.ID, tag)
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		require.Zero(t, s.Len())
	})
}
