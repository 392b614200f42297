package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/reqschema/pkg/catalog"
	"github.com/dmitrymomot/reqschema/pkg/httpapi"
	"github.com/dmitrymomot/reqschema/pkg/httpserver"
	"github.com/dmitrymomot/reqschema/pkg/logger"
	"github.com/dmitrymomot/reqschema/pkg/schema"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation HTTP API",
		Long: `Serve the validation HTTP API on HTTP_ADDR.

SIGHUP reloads the catalogs (built-ins plus CATALOG_FILE) and swaps them in
atomically; a broken file is logged and the running set is kept.
SIGINT and SIGTERM shut the server down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	reg, err := a.registry()
	if err != nil {
		return err
	}
	a.log.Info("catalogs loaded", logger.Component("registry"), slogEntities(reg))

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go a.reloadOn(ctx, hup, reg)

	api := httpapi.New(reg,
		httpapi.WithLogger(a.log.With(logger.Component("http"))),
		httpapi.WithMaxBodyBytes(a.cfg.MaxBodyBytes),
	)
	srv := httpserver.NewFromConfig(a.cfg, httpserver.WithLogger(a.log))
	return srv.Run(ctx, api.Routes())
}

// reloadOn swaps the registry contents each time a value arrives on signals.
func (a *app) reloadOn(ctx context.Context, signals <-chan os.Signal, reg *schema.Registry) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			a.reload(reg)
		}
	}
}

func (a *app) reload(reg *schema.Registry) {
	log := a.log.With(logger.Component("registry"))
	sets, err := catalog.Load(a.cfg.CatalogFile)
	if err == nil {
		err = reg.Swap(sets...)
	}
	if err != nil {
		log.Error("catalog reload failed, keeping current set", logger.Error(err))
		return
	}
	log.Info("catalogs reloaded", slogEntities(reg))
}
