package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidData     = errors.New("invalid data provided")
)

// ValidationError lists the offending fields of a request, keyed by their
// JSON name. Each value is the name of the failed rule ("required", "max", ...).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return ErrInvalidData.Error() + " (" + strings.Join(parts, ", ") + ")"
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrInvalidData).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}
