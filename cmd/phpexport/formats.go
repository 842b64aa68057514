package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/adapters/exporter/php"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/adapters/exporter/registry"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the registered export formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			exporters := registry.New(php.NewFromSettings(nil))
			for _, f := range exporters.Formats() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
