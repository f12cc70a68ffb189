// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/z5labs/ordering"
	"github.com/z5labs/ordering/internal/httpserver"

	"github.com/z5labs/bedrock"
	"github.com/z5labs/bedrock/app"
	"github.com/z5labs/bedrock/appbuilder"
	"github.com/z5labs/bedrock/config"
	"github.com/z5labs/bedrock/lifecycle"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//go:embed default_config.yaml
var defaultConfig []byte

// Configer constrains the config type accepted by [Run].
type Configer interface {
	appbuilder.OTelInitializer

	Listener(context.Context) (net.Listener, error)
	HttpServer(context.Context, http.Handler) (*http.Server, error)
}

// Config can be embedded into an app specific config to satisfy [Configer].
type Config struct {
	ordering.Config `config:",squash"`

	OpenApi struct {
		Title   string `config:"title" validate:"required"`
		Version string `config:"version" validate:"required"`
	} `config:"openapi"`

	HTTP struct {
		Port              uint          `config:"port" validate:"lte=65535"`
		ReadHeaderTimeout time.Duration `config:"read_header_timeout" validate:"gte=0"`
	} `config:"http"`
}

// Listener implements the [Configer] interface.
func (c Config) Listener(ctx context.Context) (net.Listener, error) {
	return net.Listen("tcp", fmt.Sprintf(":%d", c.HTTP.Port))
}

// HttpServer implements the [Configer] interface.
func (c Config) HttpServer(ctx context.Context, h http.Handler) (*http.Server, error) {
	s := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: c.HTTP.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(ordering.LogHandler(instrumentationName), slog.LevelError),
	}
	return s, nil
}

// Run reads the config from r, layered over the defaults, into a T and
// serves the [Api] returned by f until the process is interrupted.
//
// Variables from a ./.env file are loaded before the config is read and
// the config is checked with [ordering.Validate] before f is called. The
// OpenTelemetry SDK is initialized and shut down around the app, and any
// panic while building or running it is recovered.
func Run[T Configer](r io.Reader, f func(context.Context, T) (*Api, error)) {
	err := ordering.LoadDotEnv()
	if err != nil {
		logFailure(err)
		return
	}

	cfg := config.MultiSource(
		ordering.DefaultConfig(),
		ordering.ConfigSource(bytes.NewReader(defaultConfig)),
		ordering.ConfigSource(r),
	)

	builder := appbuilder.FromConfig(
		appbuilder.LifecycleContext(
			appbuilder.OTel(
				appbuilder.Recover(
					bedrock.AppBuilderFunc[T](func(ctx context.Context, cfg T) (bedrock.App, error) {
						return build(ctx, cfg, f)
					}),
				),
			),
			&lifecycle.Context{},
		),
	)

	ctx := context.Background()
	base, err := builder.Build(ctx, cfg)
	if err == nil {
		err = base.Run(ctx)
	}
	if err == nil {
		return
	}
	logFailure(err)
}

func build[T Configer](ctx context.Context, cfg T, f func(context.Context, T) (*Api, error)) (bedrock.App, error) {
	err := ordering.Validate(cfg)
	if err != nil {
		return nil, err
	}

	api, err := f(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ls, err := cfg.Listener(ctx)
	if err != nil {
		return nil, err
	}

	s, err := cfg.HttpServer(ctx, otelhttp.NewHandler(
		api,
		"rest",
		otelhttp.WithMessageEvents(otelhttp.ReadEvents, otelhttp.WriteEvents),
	))
	if err != nil {
		return nil, err
	}

	lc, ok := lifecycle.FromContext(ctx)
	if ok {
		lc.OnPostRun(lifecycle.HookFunc(func(ctx context.Context) error {
			return s.Shutdown(ctx)
		}))
	}

	var base bedrock.App = httpserver.NewApp(ls, s)
	base = app.Recover(base)
	base = app.InterruptOn(base, os.Kill, os.Interrupt, syscall.SIGTERM)
	return base, nil
}

// The OTel SDK may never have been initialized, so failures are logged
// straight to stdout.
func logFailure(err error) {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{}))
	log.Error("failed to run rest app", slog.Any("error", err))
}
