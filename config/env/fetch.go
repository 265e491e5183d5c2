package env

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch marks a variable that the provider failed to read.
	ErrFetch = errors.New("environment fetch failed")
	// ErrParse marks a variable that was read but could not be converted.
	ErrParse = errors.New("environment parse failed")
	// ErrInvalidText is returned by providers for values that are not valid UTF-8.
	ErrInvalidText = errors.New("value is not valid text")
	// ErrUnsupportedType is returned by Parse for types it cannot build from a string.
	ErrUnsupportedType = errors.New("unsupported type")
)

// VariableError ties a fetch or parse failure to the variable that caused it.
type VariableError struct {
	Variable string
	Err      error
}

func (e *VariableError) Error() string {
	return fmt.Sprintf("env %s: %v", e.Variable, e.Err)
}

func (e *VariableError) Unwrap() error { return e.Err }

// FetchAndParse reads name from provider and converts it with parse.
// It returns nil without error when the variable is absent.
func FetchAndParse[T any](provider Provider, name string, parse func(raw string) (T, error)) (*T, error) {
	raw, ok, err := provider.Fetch(name)
	if err != nil {
		return nil, &VariableError{Variable: name, Err: fmt.Errorf("%w: %w", ErrFetch, err)}
	}

	if !ok {
		return nil, nil
	}

	value, err := parse(raw)
	if err != nil {
		return nil, &VariableError{Variable: name, Err: fmt.Errorf("%w: %w", ErrParse, err)}
	}

	return &value, nil
}

// FetchFirst tries names in order and returns the value of the first one
// that is set. A failure on any examined name is returned immediately;
// later names are not consulted.
func FetchFirst[T any](provider Provider, names []string, parse func(raw string) (T, error)) (*T, error) {
	for _, name := range names {
		value, err := FetchAndParse(provider, name, parse)
		if err != nil {
			return nil, err
		}

		if value != nil {
			return value, nil
		}
	}

	return nil, nil
}
