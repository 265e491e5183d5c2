package file

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/0xalexb/hjarta-config/config"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
	missing  bool
}

type options struct {
	optional bool
}

// Option configures a Fetcher.
type Option func(*options)

// Optional makes a missing file contribute nothing instead of failing construction.
// Fetch then reports config.ErrNoDocument.
func Optional() Option {
	return func(o *options) {
		o.optional = true
	}
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// reading fpath from fsys. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fsys afero.Fs, fpath string, opts ...Option) func() (*Fetcher, error) {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := fsys.Stat(cleanPath)
		if errors.Is(err, fs.ErrNotExist) && o.optional {
			return &Fetcher{filepath: cleanPath, missing: true}, nil
		}

		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := afero.ReadFile(fsys, cleanPath)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	if f.missing {
		return nil, fmt.Errorf("file %q: %w", f.filepath, config.ErrNoDocument)
	}

	return slices.Clone(f.data), nil
}

// Path returns the cleaned path the fetcher reads.
func (f *Fetcher) Path() string {
	return f.filepath
}

var _ config.DataFetcher = (*Fetcher)(nil)
