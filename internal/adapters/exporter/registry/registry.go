package registry

import (
	"sort"
	"sync"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
)

var _ output.ExporterRegistry = (*Registry)(nil)

// Registry holds exporters keyed by their format tag.
type Registry struct {
	mu       sync.RWMutex
	byFormat map[string]output.Exporter
}

func New(exporters ...output.Exporter) *Registry {
	r := &Registry{byFormat: make(map[string]output.Exporter)}
	for _, e := range exporters {
		r.Register(e)
	}
	return r
}

// Register adds e, replacing any exporter with the same format.
func (r *Registry) Register(e output.Exporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byFormat[e.Format()] = e
}

func (r *Registry) Get(format string) (output.Exporter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byFormat[format]
	return e, ok
}

// Formats lists the registered formats in lexical order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
