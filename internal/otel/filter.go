// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package otel

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// levelFilter drops records below the minimum severity configured for
// their logger. Logger names match on the longest configured prefix, so
// "github.com/z5labs/ordering" also covers "github.com/z5labs/ordering/rest".
// Loggers with no matching entry emit every record.
type levelFilter struct {
	inner    sdklog.Processor
	prefixes []string
	levels   map[string]log.Severity
}

func newLevelFilter(inner sdklog.Processor, levels map[string]string) *levelFilter {
	f := &levelFilter{
		inner:    inner,
		prefixes: make([]string, 0, len(levels)),
		levels:   make(map[string]log.Severity, len(levels)),
	}
	for name, level := range levels {
		f.prefixes = append(f.prefixes, name)
		f.levels[name] = parseSeverity(level)
	}
	slices.SortFunc(f.prefixes, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return f
}

// parseSeverity defaults to debug for unknown levels.
func parseSeverity(level string) log.Severity {
	switch strings.ToLower(level) {
	case "info":
		return log.SeverityInfo
	case "warn", "warning":
		return log.SeverityWarn
	case "error":
		return log.SeverityError
	default:
		return log.SeverityDebug
	}
}

func (f *levelFilter) minSeverity(logger string) (log.Severity, bool) {
	for _, prefix := range f.prefixes {
		if strings.HasPrefix(logger, prefix) {
			return f.levels[prefix], true
		}
	}
	return 0, false
}

// OnEmit implements the [sdklog.Processor] interface.
func (f *levelFilter) OnEmit(ctx context.Context, record *sdklog.Record) error {
	floor, ok := f.minSeverity(record.InstrumentationScope().Name)
	if ok && record.Severity() < floor {
		return nil
	}
	return f.inner.OnEmit(ctx, record)
}

// Shutdown implements the [sdklog.Processor] interface.
func (f *levelFilter) Shutdown(ctx context.Context) error {
	return f.inner.Shutdown(ctx)
}

// ForceFlush implements the [sdklog.Processor] interface.
func (f *levelFilter) ForceFlush(ctx context.Context) error {
	return f.inner.ForceFlush(ctx)
}
