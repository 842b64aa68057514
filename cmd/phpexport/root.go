package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/config"
)

// app carries what the persistent pre-run resolved for the subcommands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "phpexport",
		Short:         "Export translation catalogues as PHP array files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level:   cfg.Level(),
				NoColor: cmd.ErrOrStderr() != os.Stderr,
			}))
			slog.SetDefault(a.logger)
			return nil
		},
	}
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newMigrateCmd(a))
	cmd.AddCommand(newFormatsCmd())
	return cmd
}
