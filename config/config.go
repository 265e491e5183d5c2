package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/config/env"
)

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "database:connection:timeout" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Keys absent from the document must leave the matching target fields untouched.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Layer produces one contribution to a partial. Layers are merged in order,
// so a later layer overrides every field it sets.
type Layer[P any] func() (P, error)

// Defaults returns a layer holding the declared defaults of P.
func Defaults[P interface{ Default() P }]() Layer[P] {
	return func() (P, error) {
		return New[P]().Default(), nil
	}
}

// Static returns a layer that always contributes partial.
func Static[P any](partial P) Layer[P] {
	return func() (P, error) {
		return partial, nil
	}
}

// Environment returns a layer populated from provider.
func Environment[P interface {
	FromEnv(provider env.Provider) (P, error)
}](provider env.Provider) Layer[P] {
	return func() (P, error) {
		partial, err := New[P]().FromEnv(provider)
		if err != nil {
			return New[P](), fmt.Errorf("environment: %w", err)
		}

		return partial, nil
	}
}

// Document returns a layer deserialized by parser from the data returned by fetcher.
// A fetcher or parser reporting ErrNoDocument contributes an empty partial.
func Document[P any](parser Parser, fetcher DataFetcher, path string) Layer[P] {
	return func() (P, error) {
		partial := New[P]()

		data, err := fetcher.Fetch()
		if errors.Is(err, ErrNoDocument) {
			return partial, nil
		}

		if err != nil {
			return partial, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, &partial, path)
		if errors.Is(err, ErrNoDocument) {
			return New[P](), nil
		}

		if err != nil {
			return New[P](), fmt.Errorf("parsing error: %w", err)
		}

		return partial, nil
	}
}

// Resolve merges layers left to right and resolves the result.
//
// A failing layer stops the pipeline. A failing resolution returns the
// FieldErrors of every missing or invalid field.
func Resolve[T any, P Partial[P, T]](layers ...Layer[P]) (T, error) {
	merged := New[P]()

	for i, layer := range layers {
		partial, err := layer()
		if err != nil {
			var zero T

			return zero, fmt.Errorf("layer %d: %w", i, err)
		}

		merged = merged.Merge(partial)
	}

	return merged.Resolve()
}

// Provider returns a function that resolves T from its defaults, the document
// returned by the fetcher and the environment, in that order of precedence.
func Provider[T any, P Partial[P, T]](path string) func(Parser, DataFetcher, env.Provider) (T, error) {
	return func(parser Parser, fetcher DataFetcher, provider env.Provider) (T, error) {
		cfg, err := Resolve[T, P](
			Defaults[P](),
			Document[P](parser, fetcher, path),
			Environment[P](provider),
		)
		if err != nil {
			logResolveFailure(path, err)

			return cfg, fmt.Errorf("resolving config: %w", err)
		}

		slog.Info("config resolved", slog.String("path", path))

		return cfg, nil
	}
}

func logResolveFailure(path string, err error) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		slog.Error("config resolution failed",
			slog.String("path", path),
			slog.Any("fields", fieldErrs.Paths()),
		)

		return
	}

	slog.Error("config resolution failed", slog.String("path", path), slog.String("error", err.Error()))
}
