package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
)

var _ output.ContentWriter = (*Writer)(nil)

// Writer stores content verbatim on the local filesystem.
type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

// Write creates the parent folders of path and replaces its content.
func (w *Writer) Write(ctx context.Context, path string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("make destination dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
