package yaml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/hjarta-config/config"
)

// ErrEmptyData is returned when the input data is empty.
// It matches config.ErrNoDocument, so document layers skip empty input.
var ErrEmptyData = fmt.Errorf("empty data: %w", config.ErrNoDocument)

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
// It matches config.ErrNoDocument, so a missing section contributes nothing.
var ErrPathNotFound = fmt.Errorf("path not found: %w", config.ErrNoDocument)

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for efficient path navigation.
type Parser struct {
	options []yaml.DecodeOption
}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// NewStrictParser creates a YAML parser that rejects keys the target does not declare.
func NewStrictParser() *Parser {
	return &Parser{options: []yaml.DecodeOption{yaml.DisallowUnknownField()}}
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, p.options...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, p.options...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}

var _ config.Parser = (*Parser)(nil)
