package output

import (
	"context"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
)

// TranslationSource loads the translation tree of one domain and locale.
// Implementations return domain.ErrSourceNotFound when nothing exists for it.
type TranslationSource interface {
	Load(ctx context.Context, domainName, locale string) (*entities.Map, error)
}

// ContentWriter persists rendered content verbatim.
type ContentWriter interface {
	Write(ctx context.Context, path string, content string) error
}
