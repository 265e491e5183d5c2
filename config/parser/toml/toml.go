package toml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/0xalexb/hjarta-config/config"
)

// ErrEmptyData is returned when the input data is empty.
// It matches config.ErrNoDocument, so document layers skip empty input.
var ErrEmptyData = fmt.Errorf("empty data: %w", config.ErrNoDocument)

// ErrPathNotFound is returned when the specified path is not found in the TOML document.
// It matches config.ErrNoDocument, so a missing section contributes nothing.
var ErrPathNotFound = fmt.Errorf("path not found: %w", config.ErrNoDocument)

// ErrNotTable is returned when a path segment, or the value it selects, is not a table.
var ErrNotTable = errors.New("not a table")

// Parser implements config.Parser interface for TOML data.
type Parser struct {
	strict bool
}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// NewStrictParser creates a TOML parser that rejects keys the target does not declare.
func NewStrictParser() *Parser {
	return &Parser{strict: true}
}

// Parse parses TOML data and unmarshals it into the target.
// The path parameter selects a table using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path != "" {
		section, err := selectTable(data, path)
		if err != nil {
			return err
		}

		data = section
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	if p.strict {
		decoder.DisallowUnknownFields()
	}

	err := decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// selectTable returns the table at path re-encoded as a standalone document.
func selectTable(data []byte, path string) ([]byte, error) {
	var document map[string]any

	err := toml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	current := document

	for _, key := range strings.Split(path, ":") {
		value, ok := current[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		table, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("path %q at %q: %w", path, key, ErrNotTable)
		}

		current = table
	}

	section, err := toml.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("encoding table %q: %w", path, err)
	}

	return section, nil
}

var _ config.Parser = (*Parser)(nil)
