package inline

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/env"
)

// Fetcher implements config.DataFetcher for a document held in an environment variable.
type Fetcher struct {
	variable string
	data     *string
}

// NewFetcher returns an Fx-friendly constructor for a Fetcher reading the
// variable name from provider. The variable is read once, at construction.
func NewFetcher(name string) func(provider env.Provider) (*Fetcher, error) {
	return func(provider env.Provider) (*Fetcher, error) {
		data, err := env.FetchAndParse(provider, name, env.Parse[string])
		if err != nil {
			return nil, fmt.Errorf("reading inline document: %w", err)
		}

		return &Fetcher{variable: name, data: data}, nil
	}
}

// Fetch returns the document, or config.ErrNoDocument when the variable was not set.
func (f *Fetcher) Fetch() ([]byte, error) {
	if f.data == nil {
		return nil, fmt.Errorf("variable %s: %w", f.variable, config.ErrNoDocument)
	}

	return []byte(*f.data), nil
}

var _ config.DataFetcher = (*Fetcher)(nil)
