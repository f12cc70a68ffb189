// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ordering provides the configuration and logging shared by the
// order service binaries.
package ordering

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// Logger returns a [slog.Logger] which emits through the global
// OpenTelemetry logger provider.
func Logger(name string) *slog.Logger {
	return otelslog.NewLogger(name)
}

// LogHandler is the [slog.Handler] backing [Logger].
func LogHandler(name string) slog.Handler {
	return otelslog.NewHandler(name)
}
