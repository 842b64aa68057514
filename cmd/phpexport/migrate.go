package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/infrastructure/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the translations table migrations to DATABASE_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.DatabaseURL == "" {
				return errors.New("migrate: DATABASE_URL is not set")
			}
			if path == "" {
				path = a.cfg.MigrationsPath
			}
			version, err := database.RunMigrations(a.cfg.DatabaseURL, path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "migrations directory (default MIGRATIONS_PATH)")
	return cmd
}
