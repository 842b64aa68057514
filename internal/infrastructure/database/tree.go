package database

import (
	"fmt"
	"strings"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
)

// keySeparator splits stored keys into nested map levels.
const keySeparator = "."

// Row is one stored translation. A NULL value is exported as null.
type Row struct {
	Key   string  `db:"key"`
	Value *string `db:"value"`
}

// BuildTree nests rows by their dotted keys, in row order.
func BuildTree(rows []Row) (*entities.Map, error) {
	root := entities.NewMap()
	for _, r := range rows {
		parts := strings.Split(r.Key, keySeparator)
		node := root
		for i, part := range parts[:len(parts)-1] {
			key := entities.StringKey(part)
			child, ok := node.Get(key)
			if !ok {
				m := entities.NewMap()
				node.Set(key, m)
				node = m
				continue
			}
			m, isMap := child.(*entities.Map)
			if !isMap {
				return nil, fmt.Errorf("%w: %q has a value and children (%q)",
					domain.ErrKeyConflict, strings.Join(parts[:i+1], keySeparator), r.Key)
			}
			node = m
		}

		leaf := entities.StringKey(parts[len(parts)-1])
		if existing, ok := node.Get(leaf); ok {
			if _, isMap := existing.(*entities.Map); isMap {
				return nil, fmt.Errorf("%w: %q has a value and children", domain.ErrKeyConflict, r.Key)
			}
		}
		var v entities.Value = entities.Null{}
		if r.Value != nil {
			v = entities.String(*r.Value)
		}
		node.Set(leaf, v)
	}
	return root, nil
}
