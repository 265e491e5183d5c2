package env

import (
	"fmt"
	"maps"
	"os"
	"unicode/utf8"

	cenv "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Provider reads named variables.
//
// Fetch reports ok=false with a nil error when the variable is not set.
// A non-nil error means the variable could not be read at all.
type Provider interface {
	Fetch(name string) (value string, ok bool, err error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(name string) (string, bool, error)

// Fetch implements Provider.
func (f ProviderFunc) Fetch(name string) (string, bool, error) {
	return f(name)
}

type osProvider struct{}

// OS returns a Provider backed by the live process environment.
func OS() Provider {
	return osProvider{}
}

func (osProvider) Fetch(name string) (string, bool, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", false, nil
	}

	if !utf8.ValidString(value) {
		return "", false, fmt.Errorf("variable %q: %w", name, ErrInvalidText)
	}

	return value, true, nil
}

type mapProvider struct {
	values map[string]string
}

// Map returns a Provider backed by a copy of values.
func Map(values map[string]string) Provider {
	return mapProvider{values: maps.Clone(values)}
}

func (p mapProvider) Fetch(name string) (string, bool, error) {
	value, ok := p.values[name]

	return value, ok, nil
}

// Environ returns a Provider holding a snapshot of the process environment
// taken at call time. Later changes to the environment are not observed.
func Environ() Provider {
	return mapProvider{values: cenv.ToMap(os.Environ())}
}

// DotEnv reads a .env file from fsys and returns a Provider over its variables.
func DotEnv(fsys afero.Fs, path string) (Provider, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %q: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	values, err := godotenv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing env file %q: %w", path, err)
	}

	return mapProvider{values: values}, nil
}

type chainProvider []Provider

// Chain returns a Provider that asks each provider in order and returns the
// first present value. An error from any provider stops the lookup.
func Chain(providers ...Provider) Provider {
	return chainProvider(providers)
}

func (c chainProvider) Fetch(name string) (string, bool, error) {
	for _, provider := range c {
		value, ok, err := provider.Fetch(name)
		if err != nil {
			return "", false, err
		}

		if ok {
			return value, true, nil
		}
	}

	return "", false, nil
}
