// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package httpserver runs an [http.Server] as a [bedrock.App].
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/sourcegraph/conc/pool"
)

// App serves HTTP on a listener until its context is cancelled.
type App struct {
	ls     net.Listener
	server *http.Server
}

// NewApp initializes a [App].
func NewApp(ls net.Listener, s *http.Server) *App {
	return &App{
		ls:     ls,
		server: s,
	}
}

// Run implements the [bedrock.App] interface. The server is shut down
// gracefully once ctx is done or serving fails.
func (a *App) Run(ctx context.Context) error {
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		return a.server.Serve(a.ls)
	})
	p.Go(func(ctx context.Context) error {
		<-ctx.Done()

		return a.server.Shutdown(context.Background())
	})

	err := p.Wait()
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
