// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package order

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/z5labs/ordering"
	"github.com/z5labs/ordering/etag"
	"github.com/z5labs/ordering/result"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/ordering/order"

// ErrETagMismatch is returned when an order is modified with a stale ETag.
var ErrETagMismatch = errors.New("order: etag mismatch")

// Versioned is an order along with the ETag of its current version.
type Versioned struct {
	Order Order
	ETag  etag.ETag
}

// Store keeps orders in memory. A new ETag is generated every time an
// order is saved.
type Store struct {
	tracer trace.Tracer
	log    *slog.Logger

	mu     sync.Mutex
	orders map[ID]Versioned
}

// NewStore returns a [Store] holding orders.
func NewStore(orders ...Order) *Store {
	s := &Store{
		tracer: otel.Tracer(instrumentationName),
		log:    ordering.Logger(instrumentationName),
		orders: make(map[ID]Versioned, len(orders)),
	}
	for _, o := range orders {
		s.orders[o.ID] = Versioned{Order: o, ETag: newETag()}
	}
	return s
}

func newETag() etag.ETag {
	return etag.MustNew(uuid.NewString())
}

// Put stores o, replacing any existing version, and returns its new ETag.
func (s *Store) Put(ctx context.Context, o Order) etag.ETag {
	_, span := s.tracer.Start(ctx, "Store.Put", trace.WithAttributes(
		attribute.String("order.id", o.ID.String()),
	))
	defer span.End()

	tag := newETag()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = Versioned{Order: o, ETag: tag}
	return tag
}

// Find returns the current version of the order, if any.
func (s *Store) Find(ctx context.Context, id ID) result.Option[Versioned] {
	_, span := s.tracer.Start(ctx, "Store.Find", trace.WithAttributes(
		attribute.String("order.id", id.String()),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.orders[id]
	span.SetAttributes(attribute.Bool("order.found", ok))
	return result.FromPair(v, ok)
}

// Delete removes the order if its current ETag is tag. Deleting an
// order which does not exist succeeds.
func (s *Store) Delete(ctx context.Context, id ID, tag etag.ETag) error {
	spanCtx, span := s.tracer.Start(ctx, "Store.Delete", trace.WithAttributes(
		attribute.String("order.id", id.String()),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[id]
	if !ok {
		return nil
	}
	if current.ETag != tag {
		s.log.InfoContext(spanCtx, "refusing to delete order with stale etag", slog.String("order.id", id.String()))
		return ErrETagMismatch
	}
	delete(s.orders, id)
	return nil
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
