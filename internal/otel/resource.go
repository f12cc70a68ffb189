// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package otel

import (
	"context"
	"os"
	"path/filepath"

	"github.com/z5labs/ordering/config"

	"go.opentelemetry.io/otel/sdk"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

func detectResource(ctx context.Context, cfg config.Resource) (*resource.Resource, error) {
	return resource.Detect(
		ctx,
		telemetrySDK{},
		resource.StringDetector(semconv.SchemaURL, semconv.HostNameKey, os.Hostname),
		resource.StringDetector(semconv.SchemaURL, semconv.ServiceNameKey, serviceName(cfg.ServiceName)),
		resource.StringDetector(semconv.SchemaURL, semconv.ServiceVersionKey, func() (string, error) {
			return cfg.ServiceVersion, nil
		}),
	)
}

type telemetrySDK struct{}

func (telemetrySDK) Detect(context.Context) (*resource.Resource, error) {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.TelemetrySDKName("opentelemetry"),
		semconv.TelemetrySDKLanguageGo,
		semconv.TelemetrySDKVersion(sdk.Version()),
	), nil
}

// serviceName falls back to the executable name, matching the
// unknown_service convention of the resource semantic conventions.
func serviceName(name string) func() (string, error) {
	return func() (string, error) {
		if name != "" {
			return name, nil
		}
		exe, err := os.Executable()
		if err != nil {
			return "unknown_service:go", nil
		}
		return "unknown_service:" + filepath.Base(exe), nil
	}
}
