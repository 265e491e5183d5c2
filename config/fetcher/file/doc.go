// Package file provides a file-based DataFetcher implementation for the config package.
//
// Files are read through an afero.Fs, so production code passes
// afero.NewOsFs() and tests an in-memory filesystem. The file is read at
// construction time and cached: every Fetch returns the same data.
//
// Usage:
//
//	fetcher, err := file.NewFetcher(afero.NewOsFs(), "/etc/app/config.yaml", file.Optional())()
//	if err != nil {
//	    // Handle error: permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - With Optional, a missing file is not an error; Fetch returns config.ErrNoDocument
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
