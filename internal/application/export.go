package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/input"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
)

var _ input.ExportUseCase = (*ExportService)(nil)

// ExportService drives exporters the way the host framework does: load the
// translations of a locale, build the content, hand it to the writer.
type ExportService struct {
	exporters output.ExporterRegistry
	source    output.TranslationSource
	writer    output.ContentWriter
	logger    *slog.Logger
}

func NewExportService(
	exporters output.ExporterRegistry,
	source output.TranslationSource,
	writer output.ContentWriter,
	logger *slog.Logger,
) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{
		exporters: exporters,
		source:    source,
		writer:    writer,
		logger:    logger,
	}
}

func (s *ExportService) Formats() []string {
	return s.exporters.Formats()
}

// Export writes one file per locale for the exporter's configured domain and
// returns the written paths. It stops at the first failing locale.
func (s *ExportService) Export(ctx context.Context, format string, locales []string) ([]string, error) {
	exporter, ok := s.exporters.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
	domainName, err := exporter.Domain()
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(locales))
	for _, locale := range locales {
		path, err := s.exportLocale(ctx, exporter, domainName, locale)
		if err != nil {
			return written, fmt.Errorf("export %s %s: %w", domainName, locale, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func (s *ExportService) exportLocale(ctx context.Context, exporter output.Exporter, domainName, locale string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	translations, err := s.source.Load(ctx, domainName, locale)
	if err != nil {
		return "", fmt.Errorf("load translations: %w", err)
	}
	path, err := exporter.DestinationFile(locale)
	if err != nil {
		return "", err
	}
	content, err := exporter.BuildContent(entities.NewExportContent(translations, path, locale))
	if err != nil {
		return "", fmt.Errorf("build content: %w", err)
	}
	if err := s.writer.Write(ctx, path, content); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	s.logger.Info("translations exported",
		slog.String("format", exporter.Format()),
		slog.String("domain", domainName),
		slog.String("locale", locale),
		slog.String("path", path),
		slog.Int("entries", translations.Len()),
	)
	return path, nil
}
