package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/adapters/exporter/php"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/adapters/exporter/registry"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
)

type memorySource struct {
	trees map[string]*entities.Map
	calls []string
}

func (m *memorySource) Load(_ context.Context, domainName, locale string) (*entities.Map, error) {
	key := domainName + "." + locale
	m.calls = append(m.calls, key)
	tree, ok := m.trees[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrSourceNotFound)
	}
	return tree, nil
}

type memoryWriter struct {
	files map[string]string
	err   error
}

func (m *memoryWriter) Write(_ context.Context, path, content string) error {
	if m.err != nil {
		return m.err
	}
	if m.files == nil {
		m.files = map[string]string{}
	}
	m.files[path] = content
	return nil
}

func newService(settings map[string]any, source *memorySource, writer *memoryWriter) *ExportService {
	return NewExportService(registry.New(php.NewFromSettings(settings)), source, writer, nil)
}

var settings = map[string]any{
	"destination_folder": "/srv/app/translations",
	"domain":             "messages",
	"prefix":             "app_",
}

func TestExportService_WritesOneFilePerLocale(t *testing.T) {
	source := &memorySource{trees: map[string]*entities.Map{
		"messages.en": entities.NewMap(entities.Entry{Key: entities.StringKey("hello"), Value: entities.String("Hello")}),
		"messages.fr": entities.NewMap(entities.Entry{Key: entities.StringKey("hello"), Value: entities.String("Bonjour")}),
	}}
	writer := &memoryWriter{}

	paths, err := newService(settings, source, writer).Export(context.Background(), "php", []string{"en", "fr"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/srv/app/translations/app_messages.en.php",
		"/srv/app/translations/app_messages.fr.php",
	}, paths)
	assert.Equal(t, "<?php\nreturn array (\n  'hello' => 'Hello',\n);", writer.files[paths[0]])
	assert.Equal(t, "<?php\nreturn array (\n  'hello' => 'Bonjour',\n);", writer.files[paths[1]])
	assert.Equal(t, []string{"messages.en", "messages.fr"}, source.calls)
}

func TestExportService_UnknownFormat(t *testing.T) {
	_, err := newService(settings, &memorySource{}, &memoryWriter{}).Export(context.Background(), "xliff", []string{"en"})
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestExportService_MissingDomain(t *testing.T) {
	source := &memorySource{}
	_, err := newService(map[string]any{"destination_folder": "/tmp"}, source, &memoryWriter{}).
		Export(context.Background(), "php", []string{"en"})

	assert.ErrorIs(t, err, domain.ErrMissingConfiguration)
	assert.Empty(t, source.calls)
}

func TestExportService_StopsAtFirstFailingLocale(t *testing.T) {
	source := &memorySource{trees: map[string]*entities.Map{
		"messages.en": entities.NewMap(),
		"messages.de": entities.NewMap(),
	}}
	writer := &memoryWriter{}

	paths, err := newService(settings, source, writer).Export(context.Background(), "php", []string{"en", "fr", "de"})

	require.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.Contains(t, err.Error(), "export messages fr")
	assert.Equal(t, []string{"/srv/app/translations/app_messages.en.php"}, paths)
	assert.Len(t, writer.files, 1)
	assert.Equal(t, []string{"messages.en", "messages.fr"}, source.calls)
}

func TestExportService_WriterError(t *testing.T) {
	boom := errors.New("disk full")
	source := &memorySource{trees: map[string]*entities.Map{"messages.en": entities.NewMap()}}

	_, err := newService(settings, source, &memoryWriter{err: boom}).Export(context.Background(), "php", []string{"en"})
	assert.ErrorIs(t, err, boom)
}

func TestExportService_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	source := &memorySource{trees: map[string]*entities.Map{"messages.en": entities.NewMap()}}

	_, err := newService(settings, source, &memoryWriter{}).Export(ctx, "php", []string{"en"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, source.calls)
}

func TestExportService_Formats(t *testing.T) {
	assert.Equal(t, []string{"php"}, newService(settings, &memorySource{}, &memoryWriter{}).Formats())
}
