package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrMissingConfiguration = errors.New("missing configuration")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnsupportedValue     = errors.New("unsupported translation value")
	ErrKeyConflict          = errors.New("translation key conflict")
	ErrUnknownFormat        = errors.New("no exporter registered for format")
	ErrSourceNotFound       = errors.New("translation source not found")
)

// MissingConfigurationError is returned when a required exporter setting was
// never configured. It matches ErrMissingConfiguration with errors.Is.
type MissingConfigurationError struct {
	Path []string
}

func NewMissingConfigurationError(path ...string) *MissingConfigurationError {
	return &MissingConfigurationError{Path: path}
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("configuration %q is not set", strings.Join(e.Path, "."))
}

func (e *MissingConfigurationError) Is(target error) bool {
	return target == ErrMissingConfiguration
}

var codes = []struct {
	err  error
	code string
}{
	{ErrMissingConfiguration, "missing_configuration"},
	{ErrInvalidConfiguration, "invalid_configuration"},
	{ErrUnsupportedValue, "unsupported_value"},
	{ErrKeyConflict, "key_conflict"},
	{ErrUnknownFormat, "unknown_format"},
	{ErrSourceNotFound, "source_not_found"},
}

// Code returns the stable code of the first domain error found in err's
// chain, or "" when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
