package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/reqschema/pkg/catalog"
	"github.com/dmitrymomot/reqschema/pkg/config"
	"github.com/dmitrymomot/reqschema/pkg/httpapi"
	"github.com/dmitrymomot/reqschema/pkg/logger"
	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// app carries state shared by the subcommands once the root pre-run has
// loaded configuration.
type app struct {
	envFiles    []string
	catalogFile string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "reqschema",
		Short: "Declarative request validation for back office entities",
		Long: `reqschema validates and normalizes inbound payloads against per-entity
schemas (create, update, list, duplicate check, bulk action).

Built-in catalogs: category, subcategory, minicategory, property_type,
property_unit, scraper_access. More can be declared in a YAML file
(CATALOG_FILE or --catalog).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, ".env files to load (default: ./.env if present)")
	root.PersistentFlags().StringVar(&a.catalogFile, "catalog", "", "YAML catalog file (overrides CATALOG_FILE)")

	root.AddCommand(
		newServeCmd(a),
		newValidateCmd(a),
		newDescribeCmd(a),
	)
	return root
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := config.New(a.envFiles...)
	if err != nil {
		return err
	}
	if a.catalogFile != "" {
		cfg.CatalogFile = a.catalogFile
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(level),
		logger.WithOutput(logOut),
		logger.WithContextExtractors(httpapi.RequestIDExtractor()),
	)
	return nil
}

func (a *app) registry() (*schema.Registry, error) {
	sets, err := catalog.Load(a.cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	return schema.NewRegistry(sets...)
}

func slogEntities(reg *schema.Registry) slog.Attr {
	return slog.Any("entities", reg.Entities())
}
