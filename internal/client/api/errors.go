package api

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-keyed messages from a 400 response. The
// backend returns a mapping from field name to an array of messages; only
// the first message per field is kept, which is what gets surfaced next to
// form fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
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

// Field returns the message for a field, or "" when the field passed.
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

// StatusError is a transport failure that did not map to a sentinel or a
// validation error. Message is the backend-provided message when one was
// present in the body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("http %d", e.Code)
}
