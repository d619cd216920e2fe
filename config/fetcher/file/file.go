package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrFileTooLarge is returned when the file exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxSize limits the file size in bytes. Zero or a negative size disables the limit.
func WithMaxSize(size int64) Option {
	return func(f *Fetcher) {
		f.maxSize = size
	}
}

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration text from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	maxSize  int64
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		fetcher := &Fetcher{filepath: filepath.Clean(fpath)}

		for _, apply := range opts {
			apply(fetcher)
		}

		err := fetcher.load()
		if err != nil {
			return nil, err
		}

		return fetcher, nil
	}
}

func (f *Fetcher) load() error {
	file, err := os.Open(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return fmt.Errorf("opening file %q: %w", f.filepath, err)
	}

	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	// the reported size is not trusted: pipes report 0 and files may grow
	var source io.Reader = file
	if f.maxSize > 0 {
		source = io.LimitReader(file, f.maxSize+1)
	}

	data, err := io.ReadAll(source)
	if err != nil {
		return fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	if f.maxSize > 0 && int64(len(data)) > f.maxSize {
		return fmt.Errorf("file %q exceeds limit %d bytes: %w", f.filepath, f.maxSize, ErrFileTooLarge)
	}

	f.data = data

	return nil
}

// Path returns the cleaned path the Fetcher reads from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration text that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
