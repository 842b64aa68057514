package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
)

var extensions = []string{".toml", ".yaml", ".yml", ".json"}

// Ensure MessageFileSource implements the output.TranslationSource port.
var _ output.TranslationSource = (*MessageFileSource)(nil)

// MessageFileSource reads go-i18n message files named <domain>.<locale>.<ext>.
type MessageFileSource struct {
	dir string

	mu     sync.Mutex
	bundle *i18n.Bundle
}

// NewMessageFileSource builds a source backed by a go-i18n Bundle whose
// default language is defaultLocale (e.g. "en" or "es_ES").
func NewMessageFileSource(dir, defaultLocale string) *MessageFileSource {
	tag, err := language.Parse(strings.ReplaceAll(defaultLocale, "_", "-"))
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	return &MessageFileSource{dir: dir, bundle: bundle}
}

func (s *MessageFileSource) Load(ctx context.Context, domainName, locale string) (*entities.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range extensions {
		path := filepath.Join(s.dir, domainName+"."+locale+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return s.parse(data, path)
	}
	return nil, fmt.Errorf("%w: %s.%s in %s", domain.ErrSourceNotFound, domainName, locale, s.dir)
}

func (s *MessageFileSource) parse(data []byte, path string) (*entities.Map, error) {
	s.mu.Lock()
	file, err := s.bundle.ParseMessageFileBytes(data, path)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	slog.Debug("i18n: message file parsed",
		slog.String("path", path),
		slog.String("tag", file.Tag.String()),
		slog.Int("messages", len(file.Messages)),
	)
	return MessagesToTree(file.Messages), nil
}

// MessagesToTree maps messages to a tree sorted by message ID. A message with
// only an "other" form becomes a string, otherwise a map of its plural forms.
func MessagesToTree(messages []*i18n.Message) *entities.Map {
	sorted := make([]*i18n.Message, len(messages))
	copy(sorted, messages)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	tree := entities.NewMap()
	for _, m := range sorted {
		tree.Set(entities.StringKey(m.ID), messageValue(m))
	}
	return tree
}

func messageValue(m *i18n.Message) entities.Value {
	forms := []struct {
		name  string
		value string
	}{
		{"zero", m.Zero},
		{"one", m.One},
		{"two", m.Two},
		{"few", m.Few},
		{"many", m.Many},
	}
	plural := entities.NewMap()
	for _, f := range forms {
		if f.value != "" {
			plural.Set(entities.StringKey(f.name), entities.String(f.value))
		}
	}
	if plural.Len() == 0 {
		return entities.String(m.Other)
	}
	plural.Set(entities.StringKey("other"), entities.String(m.Other))
	return plural
}
