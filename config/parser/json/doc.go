// Package json provides a JSON parser implementation for the config package.
//
// Input is normalized with github.com/tidwall/jsonc, so configuration files
// may carry comments and trailing commas. A colon-separated path such as
// "services:api" navigates nested objects before decoding. Empty input and
// missing paths match config.ErrNoDocument.
package json
