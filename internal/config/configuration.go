package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Configuration is the host configuration tree. Settings are read as
// <section>.<group>.<key>, e.g. exporter.php.domain.
type Configuration struct {
	values map[string]any
	group  string
}

func NewConfiguration(values map[string]any, group string) *Configuration {
	if values == nil {
		values = map[string]any{}
	}
	return &Configuration{values: values, group: group}
}

// LoadConfiguration reads a TOML or YAML configuration file, chosen by extension.
func LoadConfiguration(path, group string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	values := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &values)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	default:
		return nil, fmt.Errorf("read configuration: unsupported extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse configuration %s: %w", path, err)
	}

	return NewConfiguration(values, group), nil
}

func (c *Configuration) Group() string { return c.group }

// Option returns the value stored at section.group.key. A key present with a
// nil value is reported as found.
func (c *Configuration) Option(section, key string) (any, bool) {
	groups, ok := asMap(c.values[section])
	if !ok {
		return nil, false
	}
	options, ok := asMap(groups[c.group])
	if !ok {
		return nil, false
	}
	v, ok := options[key]
	return v, ok
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
