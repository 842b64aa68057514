package entities

// ExportContent is one unit of work handed to an exporter: the translations of
// a single locale and the file the host will write them to.
type ExportContent struct {
	translations    *Map
	destinationFile string
	locale          string
}

func NewExportContent(translations *Map, destinationFile, locale string) ExportContent {
	return ExportContent{
		translations:    translations,
		destinationFile: destinationFile,
		locale:          locale,
	}
}

func (c ExportContent) Translations() *Map      { return c.translations }
func (c ExportContent) DestinationFile() string { return c.destinationFile }
func (c ExportContent) Locale() string          { return c.locale }
