// Package logging provides structured logging using Go's standard library log/slog.
// Its LoggerConfig is a layered configuration: defaults, then LOG_LEVEL and
// LOG_FORMAT from the environment, then explicit overrides.
package logging
