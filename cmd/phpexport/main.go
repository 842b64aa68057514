package main

import (
	"log/slog"
	"os"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("phpexport failed", slog.String("code", domain.Code(err)), slog.Any("error", err))
		os.Exit(1)
	}
}
