// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package otel installs the global OpenTelemetry providers described by
// [config.OTel].
package otel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/z5labs/ordering/config"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Initialize sets the global tracer, meter and logger providers.
func Initialize(ctx context.Context, cfg config.OTel) error {
	r, err := detectResource(ctx, cfg.Resource)
	if err != nil {
		return err
	}

	conns := &clientConns{}
	initers := []initializer{
		tracing{cfg: cfg.Trace, r: r, conns: conns},
		metering{cfg: cfg.Metric, r: r, conns: conns},
		logging{cfg: cfg.Log, r: r, conns: conns},
	}
	for _, initer := range initers {
		err := initer.Init(ctx)
		if err != nil {
			return err
		}
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return nil
}

// clientConns shares one gRPC connection per collector target across
// the trace, metric and log exporters.
type clientConns struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

func (c *clientConns) get(cfg config.OTLP) (*grpc.ClientConn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cc, ok := c.conns[cfg.Target]; ok {
		return cc, nil
	}

	// TODO: support TLS transport credentials for collectors outside the cluster
	cc, err := grpc.NewClient(cfg.Target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	if c.conns == nil {
		c.conns = make(map[string]*grpc.ClientConn)
	}
	c.conns[cfg.Target] = cc
	return cc, nil
}

type initializer interface {
	Init(context.Context) error
}

// UnknownOTLPConnTypeError is returned when an OTLP exporter names an
// unsupported transport.
type UnknownOTLPConnTypeError struct {
	Type config.OTLPConnType
}

func (e UnknownOTLPConnTypeError) Error() string {
	return fmt.Sprintf("unknown otlp conn type: %q", e.Type)
}

// UnknownExporterTypeError is returned when a signal is configured with an
// unsupported exporter.
type UnknownExporterTypeError struct {
	Signal string
	Type   string
}

func (e UnknownExporterTypeError) Error() string {
	return fmt.Sprintf("unknown %s exporter type: %q", e.Signal, e.Type)
}

// UnknownSpanProcessorTypeError is returned for an unsupported span processor.
type UnknownSpanProcessorTypeError struct {
	Type config.SpanProcessorType
}

func (e UnknownSpanProcessorTypeError) Error() string {
	return fmt.Sprintf("unknown span processor type: %q", e.Type)
}

// UnknownMetricReaderTypeError is returned for an unsupported metric reader.
type UnknownMetricReaderTypeError struct {
	Type config.MetricReaderType
}

func (e UnknownMetricReaderTypeError) Error() string {
	return fmt.Sprintf("unknown metric reader type: %q", e.Type)
}

// UnknownLogProcessorTypeError is returned for an unsupported log processor.
type UnknownLogProcessorTypeError struct {
	Type config.LogProcessorType
}

func (e UnknownLogProcessorTypeError) Error() string {
	return fmt.Sprintf("unknown log processor type: %q", e.Type)
}

type tracing struct {
	cfg   config.Trace
	r     *resource.Resource
	conns *clientConns
}

func (t tracing) Init(ctx context.Context) error {
	exp, err := spanExporter(ctx, t.cfg.Exporter, t.conns)
	if err != nil {
		return err
	}

	var sp trace.SpanProcessor
	switch t.cfg.Processor.Type {
	case config.BatchSpanProcessorType:
		sp = trace.NewBatchSpanProcessor(
			exp,
			trace.WithBatchTimeout(t.cfg.Processor.Batch.ExportInterval),
			trace.WithMaxExportBatchSize(t.cfg.Processor.Batch.MaxSize),
		)
	default:
		return UnknownSpanProcessorTypeError{Type: t.cfg.Processor.Type}
	}

	tp := trace.NewTracerProvider(
		trace.WithSpanProcessor(sp),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(t.cfg.Sampling.Ratio))),
		trace.WithResource(t.r),
	)
	otel.SetTracerProvider(tp)
	return nil
}

func spanExporter(ctx context.Context, cfg config.SpanExporter, conns *clientConns) (trace.SpanExporter, error) {
	switch cfg.Type {
	case "", config.NoneSpanExporterType:
		return noopSpanExporter{}, nil
	case config.OTLPSpanExporterType:
	default:
		return nil, UnknownExporterTypeError{Signal: "span", Type: string(cfg.Type)}
	}

	switch cfg.OTLP.Type {
	case config.OTLPGRPC:
		cc, err := conns.get(cfg.OTLP)
		if err != nil {
			return nil, err
		}
		return otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(cc))
	case config.OTLPHTTP:
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.OTLP.Target))
	default:
		return nil, UnknownOTLPConnTypeError{Type: cfg.OTLP.Type}
	}
}

type metering struct {
	cfg   config.Metric
	r     *resource.Resource
	conns *clientConns
}

func (m metering) Init(ctx context.Context) error {
	exp, err := metricExporter(ctx, m.cfg.Exporter, m.conns)
	if err != nil {
		return err
	}

	var reader metric.Reader
	switch m.cfg.Reader.Type {
	case config.PeriodicReaderType:
		reader = metric.NewPeriodicReader(
			exp,
			metric.WithInterval(m.cfg.Reader.Periodic.ExportInterval),
			metric.WithProducer(runtime.NewProducer()),
		)
	default:
		return UnknownMetricReaderTypeError{Type: m.cfg.Reader.Type}
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(reader),
		metric.WithResource(m.r),
	)
	otel.SetMeterProvider(mp)

	return runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Second))
}

func metricExporter(ctx context.Context, cfg config.MetricExporter, conns *clientConns) (metric.Exporter, error) {
	switch cfg.Type {
	case "", config.NoneMetricExporterType:
		return noopMetricExporter{}, nil
	case config.OTLPMetricExporterType:
	default:
		return nil, UnknownExporterTypeError{Signal: "metric", Type: string(cfg.Type)}
	}

	switch cfg.OTLP.Type {
	case config.OTLPGRPC:
		cc, err := conns.get(cfg.OTLP)
		if err != nil {
			return nil, err
		}
		return otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(cc))
	case config.OTLPHTTP:
		return otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpoint(cfg.OTLP.Target))
	default:
		return nil, UnknownOTLPConnTypeError{Type: cfg.OTLP.Type}
	}
}

type logging struct {
	cfg   config.Log
	r     *resource.Resource
	conns *clientConns
}

func (l logging) Init(ctx context.Context) error {
	exp, err := logExporter(ctx, l.cfg.Exporter, l.conns)
	if err != nil {
		return err
	}

	var lp log.Processor
	switch l.cfg.Processor.Type {
	case config.SimpleLogProcessorType:
		lp = log.NewSimpleProcessor(exp)
	case config.BatchLogProcessorType:
		lp = log.NewBatchProcessor(
			exp,
			log.WithExportInterval(l.cfg.Processor.Batch.ExportInterval),
			log.WithExportMaxBatchSize(l.cfg.Processor.Batch.MaxSize),
		)
	default:
		_ = exp.Shutdown(ctx)
		return UnknownLogProcessorTypeError{Type: l.cfg.Processor.Type}
	}

	provider := log.NewLoggerProvider(
		log.WithProcessor(newLevelFilter(lp, l.cfg.Levels)),
		log.WithResource(l.r),
	)
	global.SetLoggerProvider(provider)
	return nil
}

func logExporter(ctx context.Context, cfg config.LogExporter, conns *clientConns) (log.Exporter, error) {
	switch cfg.Type {
	case "", config.ConsoleLogExporterType:
		return newConsoleExporter(cfg.Console), nil
	case config.OTLPLogExporterType:
	default:
		return nil, UnknownExporterTypeError{Signal: "log", Type: string(cfg.Type)}
	}

	switch cfg.OTLP.Type {
	case config.OTLPGRPC:
		cc, err := conns.get(cfg.OTLP)
		if err != nil {
			return nil, err
		}
		return otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(cc))
	case config.OTLPHTTP:
		return otlploghttp.New(ctx, otlploghttp.WithEndpoint(cfg.OTLP.Target))
	default:
		return nil, UnknownOTLPConnTypeError{Type: cfg.OTLP.Type}
	}
}
