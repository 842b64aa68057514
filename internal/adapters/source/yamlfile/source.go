// Package yamlfile loads translation catalogues from <domain>.<locale>.yaml
// files, keeping the key order of the document.
package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
)

var extensions = []string{".yaml", ".yml"}

const mergeTag = "!!merge"

var _ output.TranslationSource = (*Source)(nil)

type Source struct {
	dir string
}

func New(dir string) *Source { return &Source{dir: dir} }

func (s *Source) Load(ctx context.Context, domainName, locale string) (*entities.Map, error) {
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
		tree, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return tree, nil
	}
	return nil, fmt.Errorf("%w: %s.%s in %s", domain.ErrSourceNotFound, domainName, locale, s.dir)
}

// Decode parses a YAML document into a translation tree. An empty document is
// an empty tree; a top-level scalar is rejected.
func Decode(data []byte) (*entities.Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return entities.NewMap(), nil
	}
	root := resolve(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return entities.NewMap(), nil
	}
	v, err := convert(root)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*entities.Map)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a mapping, got %s", domain.ErrUnsupportedValue, root.ShortTag())
	}
	return m, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func convert(n *yaml.Node) (entities.Value, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		return convertMapping(n)
	case yaml.SequenceNode:
		m := entities.NewMap()
		for i, item := range n.Content {
			v, err := convert(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			m.Set(entities.IntKey(int64(i)), v)
		}
		return m, nil
	case yaml.ScalarNode:
		return convertScalar(n)
	default:
		return nil, fmt.Errorf("%w: yaml node kind %d at line %d", domain.ErrUnsupportedValue, n.Kind, n.Line)
	}
}

// convertMapping splices merge keys (<<) in first so explicit keys override
// merged ones while keeping the position of the merged entry.
func convertMapping(n *yaml.Node) (*entities.Map, error) {
	m := entities.NewMap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		if resolve(n.Content[i]).ShortTag() != mergeTag {
			continue
		}
		if err := merge(m, resolve(n.Content[i+1])); err != nil {
			return nil, err
		}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := resolve(n.Content[i])
		if keyNode.ShortTag() == mergeTag {
			continue
		}
		key, err := convertKey(keyNode)
		if err != nil {
			return nil, err
		}
		v, err := convert(n.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		m.Set(key, v)
	}
	return m, nil
}

// merge copies the entries of a mapping, or of a sequence of mappings, into m.
// Keys already present win, so earlier mappings in a sequence take precedence.
func merge(m *entities.Map, n *yaml.Node) error {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = sources[:0]
		for _, item := range n.Content {
			sources = append(sources, resolve(item))
		}
	}
	for _, src := range sources {
		if src.Kind != yaml.MappingNode {
			return fmt.Errorf("%w: merge value at line %d is not a mapping", domain.ErrUnsupportedValue, src.Line)
		}
		merged, err := convertMapping(src)
		if err != nil {
			return err
		}
		merged.Range(func(e entities.Entry) bool {
			if _, ok := m.Get(e.Key); !ok {
				m.Set(e.Key, e.Value)
			}
			return true
		})
	}
	return nil
}

func convertKey(n *yaml.Node) (entities.Key, error) {
	if n.Kind != yaml.ScalarNode {
		return entities.Key{}, fmt.Errorf("%w: non-scalar key at line %d", domain.ErrUnsupportedValue, n.Line)
	}
	if n.ShortTag() == "!!int" {
		var i int64
		if err := n.Decode(&i); err == nil {
			return entities.IntKey(i), nil
		}
	}
	return entities.StringKey(n.Value), nil
}

func convertScalar(n *yaml.Node) (entities.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return entities.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return entities.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// out of int64 range
			var f float64
			if ferr := n.Decode(&f); ferr != nil {
				return nil, err
			}
			return entities.Float(f), nil
		}
		return entities.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return entities.Float(f), nil
	default:
		return entities.String(n.Value), nil
	}
}
