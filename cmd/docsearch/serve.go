package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"docsearch/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may finish
const shutdownTimeout = 5 * time.Second

// Run serves the documents of a directory until the context ends.
func (c *ServeCmd) Run(deps *Dependencies) error {
	settings := deps.Config.Server
	if c.Dir != "" {
		settings.DocsDir = c.Dir
	}
	if c.Addr != "" {
		settings.Addr = c.Addr
	}
	if c.Pattern != "" {
		settings.Pattern = c.Pattern
	}

	store, err := server.LoadStore(os.DirFS(settings.DocsDir), settings.Pattern)
	if err != nil {
		return err
	}
	deps.Logger.Info("documents loaded", "dir", settings.DocsDir, "pattern", settings.Pattern, "count", store.Len())

	srv := server.New(server.Config{Addr: settings.Addr, AllowAll: c.CORS}, store, deps.Logger)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		deps.Logger.Info("listening", "addr", settings.Addr)
		return srv.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		deps.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
