// Package locale checks locale codes given on the command line. Codes keep
// their spelling (es_ES stays es_ES) since source and destination file names
// are built from them.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Canonicalize parses s as a BCP 47 tag and returns its canonical string,
// e.g. "EN-us" becomes "en-US". Underscores are accepted as separators.
func Canonicalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("locale: empty tag")
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("locale: %q: %w", s, err)
	}
	return tag.String(), nil
}

// ParseList validates every comma separated tag in values and returns them as
// written. Tags naming the same locale are dropped after the first one.
func ParseList(values []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			tag, err := Canonicalize(part)
			if err != nil {
				return nil, err
			}
			if seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, strings.TrimSpace(part))
		}
	}
	return out, nil
}
