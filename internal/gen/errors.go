package gen

import (
	"errors"
	"fmt"
)

// ErrNoTypes is returned when no type names are requested.
var ErrNoTypes = errors.New("no types requested")

// SchemaError reports a struct or field declaration the generator cannot
// turn into a partial.
type SchemaError struct {
	Struct string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema error: %s: %s", e.Struct, e.Reason)
	}

	return fmt.Sprintf("schema error: %s.%s: %s", e.Struct, e.Field, e.Reason)
}

func schemaErrorf(structName, field, format string, args ...any) *SchemaError {
	return &SchemaError{Struct: structName, Field: field, Reason: fmt.Sprintf(format, args...)}
}
