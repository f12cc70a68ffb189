// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package health provides monitors backing the service's health probes.
package health

import (
	"context"
	"sync/atomic"
)

// Monitor reports whether some part of the service is healthy.
type Monitor interface {
	Healthy(context.Context) (bool, error)
}

// MonitorFunc adapts a function into a [Monitor].
type MonitorFunc func(context.Context) (bool, error)

// Healthy implements the [Monitor] interface.
func (f MonitorFunc) Healthy(ctx context.Context) (bool, error) {
	return f(ctx)
}

// Binary is a [Monitor] which is explicitly toggled. The zero value is unhealthy.
type Binary struct {
	healthy atomic.Bool
}

// MarkHealthy marks b as healthy.
func (b *Binary) MarkHealthy() {
	b.healthy.Store(true)
}

// MarkUnhealthy marks b as unhealthy.
func (b *Binary) MarkUnhealthy() {
	b.healthy.Store(false)
}

// Healthy implements the [Monitor] interface.
func (b *Binary) Healthy(ctx context.Context) (bool, error) {
	return b.healthy.Load(), nil
}

// AndMonitor is healthy only if all of its monitors are.
type AndMonitor []Monitor

// And returns a monitor which is healthy when every one of ms is healthy.
// Monitors are checked in order and checking stops at the first unhealthy one.
func And(ms ...Monitor) AndMonitor {
	return AndMonitor(ms)
}

// Healthy implements the [Monitor] interface.
func (am AndMonitor) Healthy(ctx context.Context) (bool, error) {
	for _, m := range am {
		healthy, err := m.Healthy(ctx)
		if !healthy || err != nil {
			return false, err
		}
	}
	return true, nil
}
