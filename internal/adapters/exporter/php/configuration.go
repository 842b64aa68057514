package php

import (
	"fmt"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
)

const section = "exporter"

const (
	optionDestinationFolder = "destination_folder"
	optionDomain            = "domain"
	optionPrefix            = "prefix"
)

// ConfigurationManager reads the exporter.php.* settings.
type ConfigurationManager struct {
	cfg output.ConfigurationReader
}

func NewConfigurationManager(cfg output.ConfigurationReader) *ConfigurationManager {
	return &ConfigurationManager{cfg: cfg}
}

func (m *ConfigurationManager) DestinationFolder() (string, error) {
	return m.required(optionDestinationFolder)
}

func (m *ConfigurationManager) Domain() (string, error) {
	return m.required(optionDomain)
}

// Prefix is empty when unset or explicitly null.
func (m *ConfigurationManager) Prefix() string {
	v, ok := m.cfg.Option(section, optionPrefix)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (m *ConfigurationManager) required(key string) (string, error) {
	v, ok := m.cfg.Option(section, key)
	if !ok || v == nil {
		return "", domain.NewMissingConfigurationError(section, m.cfg.Group(), key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s.%s must be a string, got %T",
			domain.ErrInvalidConfiguration, section, m.cfg.Group(), key, v)
	}
	return s, nil
}
