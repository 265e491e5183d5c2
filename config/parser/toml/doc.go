// Package toml provides a TOML parser implementation for the config package,
// built on github.com/pelletier/go-toml/v2.
//
// A colon-separated path such as "services:api" selects the [services.api]
// table. Paths may only select tables, since only a table can be decoded into
// a partial. Empty input and missing tables match config.ErrNoDocument.
package toml
