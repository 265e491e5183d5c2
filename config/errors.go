package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMissingField is recorded for every required field that is absent at resolve time.
var ErrMissingField = errors.New("missing field")

// ErrNoDocument is returned by a DataFetcher that has nothing to contribute,
// such as an optional file that does not exist. Document layers treat it as
// an empty partial.
var ErrNoDocument = errors.New("no document")

// FieldError is a single leaf error placed at a field path.
type FieldError struct {
	Path []string
	Err  error
}

// Key returns the dot-joined field path.
func (e FieldError) Key() string {
	return strings.Join(e.Path, ".")
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key(), e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// FieldErrors accumulates field errors across a configuration tree.
//
// The zero value is empty and ready to use. Every method returns a new
// FieldErrors and leaves the receiver untouched, so values may be shared
// freely between resolutions.
type FieldErrors struct {
	entries []FieldError
}

// NewFieldErrors returns an empty accumulator.
func NewFieldErrors() FieldErrors {
	return FieldErrors{}
}

// Add records err at the single-segment path at.
func (e FieldErrors) Add(err error, at string) FieldErrors {
	return FieldErrors{entries: append(slices.Clip(e.entries), FieldError{Path: []string{at}, Err: err})}
}

// AddIfErr records err at at when err is not nil.
func (e FieldErrors) AddIfErr(err error, at string) FieldErrors {
	if err == nil {
		return e
	}

	return e.Add(err, at)
}

// AddIfAbsent records ErrMissingField at at when value is nil.
func AddIfAbsent[T any](errs FieldErrors, value *T, at string) FieldErrors {
	if value != nil {
		return errs
	}

	return errs.Add(ErrMissingField, at)
}

// Nest folds every entry of child into e, prefixing its path with at.
func (e FieldErrors) Nest(child FieldErrors, at string) FieldErrors {
	if len(child.entries) == 0 {
		return e
	}

	entries := make([]FieldError, 0, len(e.entries)+len(child.entries))
	entries = append(entries, e.entries...)

	for _, entry := range child.entries {
		path := make([]string, 0, len(entry.Path)+1)
		path = append(path, at)
		path = append(path, entry.Path...)
		entries = append(entries, FieldError{Path: path, Err: entry.Err})
	}

	return FieldErrors{entries: entries}
}

// NestIfErr folds the failure of a nested field into e.
//
// A FieldErrors is nested under at. A SelfError is recorded as-is at at so
// that callers can tell it apart from missing fields. Any other error is
// recorded at at.
func (e FieldErrors) NestIfErr(err error, at string) FieldErrors {
	if err == nil {
		return e
	}

	var child FieldErrors
	if errors.As(err, &child) {
		return e.Nest(child, at)
	}

	var selfErr SelfError
	if errors.As(err, &selfErr) {
		return e.Add(selfErr, at)
	}

	return e.Add(err, at)
}

// Result returns nil when e is empty and e itself otherwise.
func (e FieldErrors) Result() error {
	if len(e.entries) == 0 {
		return nil
	}

	return e
}

// Len returns the number of recorded entries.
func (e FieldErrors) Len() int {
	return len(e.entries)
}

// Entries returns a copy of the recorded entries in visiting order.
func (e FieldErrors) Entries() []FieldError {
	entries := make([]FieldError, len(e.entries))
	for i, entry := range e.entries {
		entries[i] = FieldError{Path: slices.Clone(entry.Path), Err: entry.Err}
	}

	return entries
}

// Paths returns the dot-joined path of every entry in visiting order.
func (e FieldErrors) Paths() []string {
	paths := make([]string, len(e.entries))
	for i, entry := range e.entries {
		paths[i] = entry.Key()
	}

	return paths
}

func (e FieldErrors) Error() string {
	parts := make([]string, len(e.entries))
	for i, entry := range e.entries {
		parts[i] = entry.Error()
	}

	return fmt.Sprintf("%d invalid field(s): %s", len(e.entries), strings.Join(parts, "; "))
}

// Unwrap exposes every entry to errors.Is and errors.As.
func (e FieldErrors) Unwrap() []error {
	errs := make([]error, len(e.entries))
	for i, entry := range e.entries {
		errs[i] = entry
	}

	return errs
}

// SelfError marks a value that failed as a whole rather than through one of
// its fields, for example a leaf partial with nothing to resolve to.
type SelfError struct {
	Err error
}

// Self wraps err as a SelfError.
func Self(err error) error {
	return SelfError{Err: err}
}

func (e SelfError) Error() string {
	return fmt.Sprintf("invalid value: %v", e.Err)
}

func (e SelfError) Unwrap() error { return e.Err }
