// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config defines the OpenTelemetry configuration shared by every
// ordering service binary.
package config

import (
	"time"
)

// Resource describes the service emitting telemetry.
type Resource struct {
	ServiceName    string `config:"service_name" validate:"required"`
	ServiceVersion string `config:"service_version"`
}

// Batch configures batching of exported telemetry.
type Batch struct {
	ExportInterval time.Duration `config:"export_interval" validate:"gte=0"`
	MaxSize        int           `config:"max_size" validate:"gte=0"`
}

// OTLPConnType is the transport used to reach an OTLP collector.
type OTLPConnType string

const (
	OTLPHTTP OTLPConnType = "http"
	OTLPGRPC OTLPConnType = "grpc"
)

// OTLP configures an OTLP exporter.
type OTLP struct {
	Type   OTLPConnType `config:"type"`
	Target string       `config:"target"`
}

type SpanProcessorType string

const (
	BatchSpanProcessorType SpanProcessorType = "batch"
)

type SpanProcessor struct {
	Type  SpanProcessorType `config:"type"`
	Batch Batch             `config:"batch"`
}

type SpanSampling struct {
	Ratio float64 `config:"ratio" validate:"gte=0,lte=1"`
}

type SpanExporterType string

const (
	NoneSpanExporterType SpanExporterType = "none"
	OTLPSpanExporterType SpanExporterType = "otlp"
)

type SpanExporter struct {
	Type SpanExporterType `config:"type"`
	OTLP OTLP             `config:"otlp"`
}

// Trace configures the tracer provider.
type Trace struct {
	Processor SpanProcessor `config:"processor"`
	Sampling  SpanSampling  `config:"sampling"`
	Exporter  SpanExporter  `config:"exporter"`
}

type MetricReaderType string

const (
	PeriodicReaderType MetricReaderType = "periodic"
)

type PeriodicReader struct {
	ExportInterval time.Duration `config:"export_interval" validate:"gte=0"`
}

type MetricReader struct {
	Type     MetricReaderType `config:"type"`
	Periodic PeriodicReader   `config:"periodic"`
}

type MetricExporterType string

const (
	NoneMetricExporterType MetricExporterType = "none"
	OTLPMetricExporterType MetricExporterType = "otlp"
)

type MetricExporter struct {
	Type MetricExporterType `config:"type"`
	OTLP OTLP               `config:"otlp"`
}

// Metric configures the meter provider.
type Metric struct {
	Reader   MetricReader   `config:"reader"`
	Exporter MetricExporter `config:"exporter"`
}

type LogProcessorType string

const (
	SimpleLogProcessorType LogProcessorType = "simple"
	BatchLogProcessorType  LogProcessorType = "batch"
)

type LogProcessor struct {
	Type  LogProcessorType `config:"type"`
	Batch Batch            `config:"batch"`
}

type LogExporterType string

const (
	ConsoleLogExporterType LogExporterType = "console"
	OTLPLogExporterType    LogExporterType = "otlp"
)

// ConsoleFormat selects how the console log exporter renders records.
type ConsoleFormat string

const (
	JSONConsoleFormat   ConsoleFormat = "json"
	PrettyConsoleFormat ConsoleFormat = "pretty"
)

// Console configures the console log exporter. When File is set, records
// are written to a size rotated file instead of stdout.
type Console struct {
	Format     ConsoleFormat `config:"format" validate:"omitempty,oneof=json pretty"`
	File       string        `config:"file"`
	MaxSizeMB  int           `config:"max_size_mb" validate:"gte=0"`
	MaxBackups int           `config:"max_backups" validate:"gte=0"`
	MaxAgeDays int           `config:"max_age_days" validate:"gte=0"`
	Compress   bool          `config:"compress"`
}

type LogExporter struct {
	Type    LogExporterType `config:"type"`
	OTLP    OTLP            `config:"otlp"`
	Console Console         `config:"console"`
}

// Log configures the logger provider. Levels maps logger names, or
// prefixes of them, to the minimum level emitted.
type Log struct {
	Processor LogProcessor      `config:"processor"`
	Exporter  LogExporter       `config:"exporter"`
	Levels    map[string]string `config:"levels" validate:"dive,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
}

// OTel is the complete OpenTelemetry configuration.
type OTel struct {
	Resource Resource `config:"resource"`
	Trace    Trace    `config:"trace"`
	Metric   Metric   `config:"metric"`
	Log      Log      `config:"log"`
}
