package domain

import (
	"sort"
	"strings"
)

// ValidationError carries field-level input failures raised at the transport
// boundary. The HTTP error handler renders Fields as the "errors" object of
// the error envelope.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
