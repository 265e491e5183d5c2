// Package gen derives partial implementations from annotated configuration structs.
//
// Field schema, read from struct tags:
//
//	default:"100"              value used when no other source sets the field
//	env:"SPECIFIC_BAR,BAR"     candidate variables, first set one wins
//	layer:"nested"             delegate to the nested type's own partial
//	layer:"nested=MaxPartial"  delegate to a hand-written partial
//	layer:"-"                  leave the field out of the partial
//
// A field is either nested or plain. Declarations the generated code could
// not honor are rejected with a *SchemaError before any code is emitted.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// OutputName is the default file name for the partials of typeNames.
func OutputName(typeNames []string) string {
	if len(typeNames) == 0 {
		return "partial.go"
	}

	return strings.ToLower(typeNames[0]) + "_partial.go"
}

// Run loads typeNames from dir, generates their partials and writes them to
// output, relative to dir unless absolute. It returns the written path.
func Run(fsys afero.Fs, dir string, typeNames []string, output string) (string, error) {
	schema, err := Load(fsys, dir, typeNames)
	if err != nil {
		return "", err
	}

	src, err := Generate(schema)
	if err != nil {
		return "", err
	}

	if output == "" {
		output = OutputName(typeNames)
	}

	if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}

	err = afero.WriteFile(fsys, output, src, os.FileMode(0o644))
	if err != nil {
		return "", fmt.Errorf("writing %q: %w", output, err)
	}

	return output, nil
}
