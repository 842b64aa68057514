package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingConfigurationError(t *testing.T) {
	err := NewMissingConfigurationError("exporter", "php", "domain")

	assert.EqualError(t, err, `configuration "exporter.php.domain" is not set`)
	assert.ErrorIs(t, err, ErrMissingConfiguration)
	assert.NotErrorIs(t, err, ErrInvalidConfiguration)

	wrapped := fmt.Errorf("export messages: %w", err)
	var target *MissingConfigurationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, []string{"exporter", "php", "domain"}, target.Path)
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), ""},
		{"missing", NewMissingConfigurationError("exporter", "php", "domain"), "missing_configuration"},
		{"wrapped unknown format", fmt.Errorf("locale en: %w", ErrUnknownFormat), "unknown_format"},
		{"key conflict", fmt.Errorf("key a.b: %w", ErrKeyConflict), "key_conflict"},
		{"source", ErrSourceNotFound, "source_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
