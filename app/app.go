package app

import (
	"context"

	"log/slog"

	"github.com/oqrlabs/revenue-manager/config"
	httpapi "github.com/oqrlabs/revenue-manager/internal/api/http"
	"github.com/oqrlabs/revenue-manager/internal/apisrv/dashboard"
	"github.com/oqrlabs/revenue-manager/internal/cache"
	"github.com/oqrlabs/revenue-manager/internal/dependency"
	"github.com/oqrlabs/revenue-manager/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting revenue manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	cacheStore := cache.NewStore()

	dashboardS := dashboard.New(&a.c.Dashboard, a.c.Cache, a.db, cacheStore)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, dashboardS); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	a.hs.Stop(ctx)
	a.db.Close()
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
