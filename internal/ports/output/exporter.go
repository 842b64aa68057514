package output

import "github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"

// ExportContent is what the host hands to an exporter for one locale.
// DestinationFile and Locale are host metadata; exporters may ignore them.
type ExportContent interface {
	Translations() *entities.Map
	DestinationFile() string
	Locale() string
}

// Exporter converts translations into the content of one file format.
type Exporter interface {
	// Format is the tag the host registry routes content by.
	Format() string
	// Domain is the translation domain the exporter is configured for.
	Domain() (string, error)
	// DestinationFile is the path the content for locale must be written to.
	DestinationFile(locale string) (string, error)
	BuildContent(content ExportContent) (string, error)
}

// ConfigurationReader exposes nested settings, looked up as
// <section>.<group>.<key> where group is bound by the implementation.
type ConfigurationReader interface {
	Option(section, key string) (any, bool)
	Group() string
}

// ExporterRegistry resolves exporters by format tag.
type ExporterRegistry interface {
	Get(format string) (Exporter, bool)
	Formats() []string
}

var _ ExportContent = entities.ExportContent{}
