package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/adapters/exporter/php"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/adapters/exporter/registry"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/adapters/source/yamlfile"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/application"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/config"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/infrastructure/database"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/infrastructure/filesystem"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/infrastructure/i18n"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/pkg/locale"
)

const (
	sourceYAML     = "yaml"
	sourceI18n     = "i18n"
	sourcePostgres = "postgres"
)

type exportOptions struct {
	format     string
	source     string
	dir        string
	configPath string
	locales    []string
}

func newExportCmd(a *app) *cobra.Command {
	opts := exportOptions{format: "php", source: sourceYAML, dir: "translations"}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write one PHP catalogue per locale for the configured domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.format, "format", opts.format, "export format")
	fs.StringVar(&opts.source, "source", opts.source, "translation source: yaml, i18n or postgres")
	fs.StringVar(&opts.dir, "dir", opts.dir, "directory holding <domain>.<locale>.* files")
	fs.StringVar(&opts.configPath, "config", "", "exporter configuration file (default EXPORTER_CONFIG)")
	fs.StringSliceVarP(&opts.locales, "locale", "l", nil, "locales to export, repeatable or comma separated")
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, opts exportOptions) error {
	locales, err := locale.ParseList(opts.locales)
	if err != nil {
		return err
	}
	if len(locales) == 0 {
		return errors.New("export: at least one --locale is required")
	}

	path := opts.configPath
	if path == "" {
		path = a.cfg.ExporterConfig
	}
	configuration, err := config.LoadConfiguration(path, "php")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	source, closeSource, err := a.openSource(ctx, opts, locales[0])
	if err != nil {
		return err
	}
	defer closeSource()

	service := application.NewExportService(
		registry.New(php.New(configuration)),
		source,
		filesystem.NewWriter(),
		a.logger,
	)
	written, err := service.Export(ctx, opts.format, locales)
	for _, p := range written {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return err
}

func (a *app) openSource(ctx context.Context, opts exportOptions, defaultLocale string) (output.TranslationSource, func(), error) {
	switch opts.source {
	case sourceYAML:
		return yamlfile.New(opts.dir), func() {}, nil
	case sourceI18n:
		return i18n.NewMessageFileSource(opts.dir, defaultLocale), func() {}, nil
	case sourcePostgres:
		if a.cfg.DatabaseURL == "" {
			return nil, nil, errors.New("export: DATABASE_URL is required for the postgres source")
		}
		pool, err := database.NewPool(ctx, a.cfg.DatabaseURL, database.PoolSettings{
			MaxConns:        a.cfg.DatabaseMaxConns,
			ApplicationName: "phpexport",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return database.NewTranslationRepository(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("export: unknown source %q", opts.source)
	}
}
