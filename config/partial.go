package config

import "github.com/0xalexb/hjarta-config/config/env"

// Partial is implemented by the partial counterpart P of a configuration type T.
//
// The zero value of P is the empty partial: every leaf absent and every
// nested partial empty. Partials are values; Merge returns a new P and
// never modifies either operand.
type Partial[P, T any] interface {
	// Default returns a partial holding the declared defaults.
	Default() P
	// FromEnv returns a partial holding only the values found in provider.
	// Failures for every field are collected into a single FieldErrors.
	FromEnv(provider env.Provider) (P, error)
	// Merge overrides the receiver with every field present in other.
	Merge(other P) P
	// Resolve builds T, or returns a FieldErrors listing every missing or
	// invalid field.
	Resolve() (T, error)
}

// New returns the empty partial P.
func New[P any]() P {
	var empty P

	return empty
}

// Override returns override when present and base otherwise.
func Override[T any](base, override *T) *T {
	if override != nil {
		return override
	}

	return base
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
