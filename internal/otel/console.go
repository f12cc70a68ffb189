// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package otel

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/z5labs/ordering/config"

	"github.com/lmittmann/tint"
	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleExporter renders log records through a [slog.Handler].
type consoleExporter struct {
	handler slog.Handler
	out     io.Closer
}

func newConsoleExporter(cfg config.Console) *consoleExporter {
	var w io.Writer = os.Stdout
	var out io.Closer
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		w = lj
		out = lj
	}

	return &consoleExporter{
		handler: consoleHandler(w, cfg.Format, cfg.File != ""),
		out:     out,
	}
}

// The returned handler accepts every level. Filtering is done by [levelFilter].
func consoleHandler(w io.Writer, format config.ConsoleFormat, toFile bool) slog.Handler {
	if format == config.PrettyConsoleFormat {
		return tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC3339,
			NoColor:    toFile,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}

// Export implements the [sdklog.Exporter] interface.
func (e *consoleExporter) Export(ctx context.Context, records []sdklog.Record) error {
	const sevOffset = log.SeverityDebug - log.Severity(slog.LevelDebug)
	for _, record := range records {
		sr := slog.NewRecord(
			record.Timestamp(),
			slog.Level(record.Severity()-sevOffset),
			record.Body().AsString(),
			0,
		)
		record.WalkAttributes(func(kv log.KeyValue) bool {
			sr.AddAttrs(slog.Attr{Key: kv.Key, Value: slogValue(kv.Value)})
			return true
		})
		if name := record.InstrumentationScope().Name; name != "" {
			sr.AddAttrs(slog.String("logger", name))
		}
		if record.TraceID().IsValid() {
			sr.AddAttrs(slog.Group(
				"otel",
				slog.String("trace.id", record.TraceID().String()),
				slog.String("span.id", record.SpanID().String()),
			))
		}

		err := e.handler.Handle(ctx, sr)
		if err != nil {
			return err
		}
	}
	return nil
}

func slogValue(v log.Value) slog.Value {
	switch v.Kind() {
	case log.KindBool:
		return slog.BoolValue(v.AsBool())
	case log.KindBytes:
		return slog.AnyValue(v.AsBytes())
	case log.KindFloat64:
		return slog.Float64Value(v.AsFloat64())
	case log.KindInt64:
		return slog.Int64Value(v.AsInt64())
	case log.KindString:
		return slog.StringValue(v.AsString())
	case log.KindMap:
		kvs := v.AsMap()
		attrs := make([]slog.Attr, len(kvs))
		for i, kv := range kvs {
			attrs[i] = slog.Attr{Key: kv.Key, Value: slogValue(kv.Value)}
		}
		return slog.GroupValue(attrs...)
	case log.KindSlice:
		vs := v.AsSlice()
		vals := make([]any, len(vs))
		for i := range vs {
			vals[i] = slogValue(vs[i]).Any()
		}
		return slog.AnyValue(vals)
	default:
		return slog.StringValue(v.String())
	}
}

// ForceFlush implements the [sdklog.Exporter] interface.
func (e *consoleExporter) ForceFlush(context.Context) error {
	return nil
}

// Shutdown implements the [sdklog.Exporter] interface.
func (e *consoleExporter) Shutdown(context.Context) error {
	if e.out == nil {
		return nil
	}
	return e.out.Close()
}
