// Package fetch defines how the parser obtains configuration bytes.
//
// The parser resolves its root file and every #include target through a
// single Fetcher, so data can come from the filesystem, from memory, or
// from anywhere else without touching the parsing core.
package fetch

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Map when no data is registered for a path.
var ErrNotFound = errors.New("no data for path")

// Fetcher reads the raw bytes behind a configuration path.
type Fetcher interface {
	Fetch(path string) ([]byte, error)
}

// Map is an in-memory Fetcher keyed by path. Useful for tests and for
// configurations embedded in the binary.
type Map map[string][]byte

// Fetch returns a copy of the registered data to prevent callers from
// mutating the backing map.
func (m Map) Fetch(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("fetch %q: %w", path, ErrNotFound)
	}

	result := make([]byte, len(data))
	copy(result, data)

	return result, nil
}
