package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/0xalexb/hjarta-config/config"
)

// ErrEmptyData is returned when the input data is empty.
// It matches config.ErrNoDocument, so document layers skip empty input.
var ErrEmptyData = fmt.Errorf("empty data: %w", config.ErrNoDocument)

// ErrPathNotFound is returned when the specified path is not found in the JSON document.
// It matches config.ErrNoDocument, so a missing section contributes nothing.
var ErrPathNotFound = fmt.Errorf("path not found: %w", config.ErrNoDocument)

// ErrNotObject is returned when an intermediate path segment is not a JSON object.
var ErrNotObject = errors.New("not an object")

// Parser implements config.Parser interface for JSON data.
// Comments and trailing commas are accepted.
type Parser struct {
	strict bool
}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// NewStrictParser creates a JSON parser that rejects keys the target does not declare.
func NewStrictParser() *Parser {
	return &Parser{strict: true}
}

// Parse parses JSON data and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	data = jsonc.ToJSON(data)
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path != "" {
		value, err := selectValue(data, path)
		if err != nil {
			return err
		}

		data = value
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	if p.strict {
		decoder.DisallowUnknownFields()
	}

	err := decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

func selectValue(data []byte, path string) (json.RawMessage, error) {
	current := json.RawMessage(data)

	for _, key := range strings.Split(path, ":") {
		var object map[string]json.RawMessage

		err := json.Unmarshal(current, &object)
		if err != nil {
			return nil, fmt.Errorf("path %q at %q: %w", path, key, ErrNotObject)
		}

		value, ok := object[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		current = value
	}

	return current, nil
}

var _ config.Parser = (*Parser)(nil)
