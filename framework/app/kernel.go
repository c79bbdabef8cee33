package app

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/km-arc/go-discover/framework/config"
	"github.com/km-arc/go-discover/framework/container"
	"github.com/km-arc/go-discover/framework/discover"
	"github.com/km-arc/go-discover/framework/routing"
)

// Application bundles the pieces a marker-driven app runs on: config, the
// IoC container populated by the registration pass, and the HTTP router with
// a per-request scope already installed.
type Application struct {
	Config    *config.Config
	Container *container.Container
	Router    *routing.Router
	Log       *slog.Logger
}

// New bootstraps the application: loads config, creates the container, runs
// the marker registration pass over every module in the process table, and
// wires the request-scope middleware. Marking happens in init functions, so
// by the time New runs the module table is complete.
//
//	application, err := app.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	application.Router.Get("/", handler)
//	application.Run()
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)

	level := slog.LevelInfo
	if cfg.App.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	c := container.New()
	if _, err := discover.RegisterAll(c); err != nil {
		return nil, err
	}

	marked := 0
	for _, m := range discover.Modules() {
		entries := m.Entries()
		marked += len(entries)
		logger.Debug("registered module", "module", m.Name(), "services", len(entries))
	}
	logger.Info("marker registration pass complete",
		"modules", len(discover.Modules()), "services", marked)

	r := routing.New()
	r.Middleware(routing.ScopeMiddleware(c))

	return &Application{
		Config:    cfg,
		Container: c,
		Router:    r,
		Log:       logger,
	}, nil
}

// Run starts the HTTP server on APP_PORT (default 8000) and blocks.
func (a *Application) Run() error {
	addr := ":" + a.Config.App.Port
	a.Log.Info("server starting",
		"app", a.Config.App.Name, "addr", addr, "env", a.Config.App.Env)

	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
	}
	return srv.ListenAndServe()
}
