// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with native PathString support
// for path navigation. Colon-separated paths (e.g., "api:permissions") are
// converted to YAML path format (e.g., "$.api.permissions") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var partial ServerConfigPartial
//	err := parser.Parse(data, &partial, "api:server")
//
// Empty input and missing paths both match config.ErrNoDocument, so a
// document layer built on this parser contributes nothing in those cases.
// NewStrictParser rejects keys that the target does not declare.
package yaml
