package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinPath is the path that makes NewFetcher read standard input.
const StdinPath = "-"

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for documents read once from a file
// or a stream and cached.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns an Fx-friendly constructor for a Fetcher over fpath.
// The file is read when the constructor runs; StdinPath reads os.Stdin.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if fpath == StdinPath {
			return NewReaderFetcher(StdinPath, os.Stdin)
		}

		cleanPath := filepath.Clean(fpath)

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

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// NewReaderFetcher drains r and caches its contents under name.
func NewReaderFetcher(name string, r io.Reader) (*Fetcher, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return &Fetcher{
		filepath: name,
		data:     data,
	}, nil
}

// Path returns the cleaned file path, or the name given to NewReaderFetcher.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached data so callers cannot mutate it.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
