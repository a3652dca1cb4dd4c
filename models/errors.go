package models

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned by lookups by id when no row matches.
var ErrNotFound = errors.New("record not found")

// ValidationError carries one message per offending form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
