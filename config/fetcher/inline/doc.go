// Package inline provides a DataFetcher whose document is the content of an
// environment variable, for deployments that pass a whole configuration
// file through the environment:
//
//	APP_CONFIG_CONTENT='{"required_baz": true}' ./app
//
// An unset variable contributes nothing: Fetch reports config.ErrNoDocument.
package inline
