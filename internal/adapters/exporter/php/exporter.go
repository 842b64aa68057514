// Package php exports translations as a PHP file returning an array literal,
// the layout Symfony and Laravel load translation catalogues from.
package php

import (
	"path/filepath"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/config"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
)

const (
	format = "php"
	header = "<?php\nreturn "
	footer = ";"
)

var _ output.Exporter = (*Exporter)(nil)

type Exporter struct {
	configuration *ConfigurationManager
}

// New builds an exporter reading its settings from the host configuration.
func New(cfg output.ConfigurationReader) *Exporter {
	return &Exporter{configuration: NewConfigurationManager(cfg)}
}

// NewFromSettings builds an exporter from the bare exporter.php settings.
func NewFromSettings(settings map[string]any) *Exporter {
	values := map[string]any{
		section: map[string]any{format: settings},
	}
	return New(config.NewConfiguration(values, format))
}

func (e *Exporter) Format() string { return format }

func (e *Exporter) Configuration() *ConfigurationManager { return e.configuration }

func (e *Exporter) Domain() (string, error) { return e.configuration.Domain() }

// DestinationFile returns <destination_folder>/<prefix><domain>.<locale>.php,
// cleaned by filepath.Join.
func (e *Exporter) DestinationFile(locale string) (string, error) {
	folder, err := e.configuration.DestinationFolder()
	if err != nil {
		return "", err
	}
	domainName, err := e.configuration.Domain()
	if err != nil {
		return "", err
	}
	name := e.configuration.Prefix() + domainName + "." + locale + "." + format
	return filepath.Join(folder, name), nil
}

func (e *Exporter) BuildContent(content output.ExportContent) (string, error) {
	return header + RenderLiteral(content.Translations()) + footer, nil
}
