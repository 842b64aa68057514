package input

import "context"

type ExportUseCase interface {
	// Export renders the configured domain for every locale with the exporter
	// registered for format and returns the written file paths.
	Export(ctx context.Context, format string, locales []string) ([]string, error)
	Formats() []string
}
