package gen

import (
	"fmt"
	"strings"
)

// Kind classifies a configuration field.
type Kind int

const (
	// Plain fields hold a leaf value with an optional default and environment variables.
	Plain Kind = iota
	// Nested fields delegate to the partial of another configuration type.
	Nested
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Nested:
		return "nested"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is the schema of one configuration field.
type Field struct {
	// Name is the Go field name.
	Name string
	// Key is the document key and the field's segment in error paths.
	Key  string
	Kind Kind
	// Type is the field type as declared on the configuration struct.
	Type string
	// Elem is the type of a plain field's value: Type without the pointer
	// of an optional field.
	Elem     string
	Optional bool
	// Default is the Go expression producing the default value, if any.
	Default string
	// Env lists candidate environment variables in precedence order.
	Env []string
	// Partial is the partial type a nested field delegates to.
	Partial string
	// Tag is the struct tag of the field on the partial type.
	Tag string
	// Local names the variable holding a nested field's resolved value.
	Local string
}

// IsNested reports whether the field delegates to a nested partial.
func (f Field) IsNested() bool {
	return f.Kind == Nested
}

// PartialType is the type of the field on the partial struct.
func (f Field) PartialType() string {
	if f.IsNested() {
		return f.Partial
	}

	return "*" + f.Elem
}

// EnvList renders Env as a Go string slice literal.
func (f Field) EnvList() string {
	quoted := make([]string, len(f.Env))
	for i, name := range f.Env {
		quoted[i] = fmt.Sprintf("%q", name)
	}

	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// Struct is the schema of one configuration type.
type Struct struct {
	Name   string
	Fields []Field
}

// HasDefaults reports whether Default contributes any field.
func (s Struct) HasDefaults() bool {
	for _, field := range s.Fields {
		if field.IsNested() || field.Default != "" {
			return true
		}
	}

	return false
}

// PartialName is the name of the generated partial type.
func (s Struct) PartialName() string {
	return s.Name + partialSuffix
}

// Import is an import required by the generated file.
type Import struct {
	Name string
	Path string
}

// IsStd reports whether the import belongs to the standard library.
func (i Import) IsStd() bool {
	first, _, _ := strings.Cut(i.Path, "/")

	return !strings.Contains(first, ".")
}

// Schema is everything needed to emit one generated file.
type Schema struct {
	Package string
	Imports []Import
	Structs []Struct
}

// StdImports returns the standard library imports, the first import group.
func (s *Schema) StdImports() []Import {
	return s.importGroup(true)
}

// ModuleImports returns every other import, the second import group.
func (s *Schema) ModuleImports() []Import {
	return s.importGroup(false)
}

func (s *Schema) importGroup(std bool) []Import {
	var group []Import

	for _, imp := range s.Imports {
		if imp.IsStd() == std {
			group = append(group, imp)
		}
	}

	return group
}

const partialSuffix = "Partial"
