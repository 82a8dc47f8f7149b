// Package file provides the filesystem implementation of fetch.Fetcher.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when a fetched path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements fetch.Fetcher against the operating system.
// Paths are cleaned and validated before reading.
type Fetcher struct{}

// New creates a new filesystem fetcher.
func New() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file at path.
// Returns an error if the path cannot be stat'ed, points to a directory,
// or cannot be read.
func (f *Fetcher) Fetch(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}
